package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/veterans_league/internal/cup/model"
	"github.com/festy23/veterans_league/internal/cup/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cup(ctx context.Context, seasonID int64) (*model.Cup, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cup), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func TestHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		target string
		setup  func(*mockService)
		status int
	}{
		{"ok", "/cup?season_id=1", func(m *mockService) {
			m.On("Cup", mock.Anything, int64(1)).Return(&model.Cup{SeasonID: 1, Format: model.FormatKnockout}, nil)
		}, http.StatusOK},
		{"missing season", "/cup?season_id=2", func(m *mockService) {
			m.On("Cup", mock.Anything, int64(2)).Return(nil, model.ErrSeasonNotFound)
		}, http.StatusNotFound},
		{"failure", "/cup?season_id=3", func(m *mockService) {
			m.On("Cup", mock.Anything, int64(3)).Return(nil, errors.New("db"))
		}, http.StatusInternalServerError},
		{"no season", "/cup", func(*mockService) {}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setup(svc)
			r := gin.New()
			r.GET("/cup", New(svc, zaptest.NewLogger(t).Sugar()).Get)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
