package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/veterans_league/internal/match/model"
	"github.com/festy23/veterans_league/internal/match/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, filter model.ListFilter) ([]model.CalendarEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEntry), args.Error(1)
}

func (m *mockService) Weeks(ctx context.Context, seasonID int64) ([]int, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id int64) (*model.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req *model.MatchRequest) (*model.Match, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *model.MatchRequest) (*model.Match, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(t *testing.T, svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zaptest.NewLogger(t).Sugar())
	r := gin.New()
	r.GET("/matches", h.List)
	r.GET("/matches/weeks", h.Weeks)
	r.GET("/matches/:id", h.Get)
	r.POST("/matches", h.Create)
	r.PUT("/matches/:id", h.Update)
	r.DELETE("/matches/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_List(t *testing.T) {
	svc := new(mockService)
	r := setupRouter(t, svc)
	week := 3
	svc.On("List", mock.Anything, model.ListFilter{SeasonID: 1, Week: &week, Competition: model.CompetitionLeague}).
		Return([]model.CalendarEntry{{Match: model.Match{ID: 7}, HomeTeamName: "A", AwayTeamName: "B"}}, nil)

	w := serve(r, http.MethodGet, "/matches?season_id=1&week=3&competition=League", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string][]model.CalendarEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body["matches"], 1)
	assert.Equal(t, "A", body["matches"][0].HomeTeamName)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/matches?season_id=1&week=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/matches", "").Code)
}

func TestHandler_ListInvalidCompetition(t *testing.T) {
	svc := new(mockService)
	r := setupRouter(t, svc)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCompetition)

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/matches?season_id=1&competition=x", "").Code)
}

func TestHandler_Weeks(t *testing.T) {
	svc := new(mockService)
	r := setupRouter(t, svc)
	svc.On("Weeks", mock.Anything, int64(1)).Return([]int{1, 2, 3}, nil)

	w := serve(r, http.MethodGet, "/matches/weeks?season_id=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"weeks":[1,2,3]}`, w.Body.String())
}

func TestHandler_Writes(t *testing.T) {
	const body = `{"season_id":1,"home_team_id":1,"away_team_id":2,"scheduled_at":"2025-09-06T10:00:00Z","home_score":1,"away_score":0}`

	tests := []struct {
		name   string
		method string
		target string
		body   string
		setup  func(*mockService)
		status int
	}{
		{
			name: "create", method: http.MethodPost, target: "/matches", body: body,
			setup: func(m *mockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(r *model.MatchRequest) bool {
					return r.HomeScore != nil && *r.HomeScore == 1
				})).Return(&model.Match{ID: 1}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name: "create negative score", method: http.MethodPost, target: "/matches",
			body:   `{"season_id":1,"home_team_id":1,"away_team_id":2,"scheduled_at":"2025-09-06T10:00:00Z","home_score":-1,"away_score":0}`,
			setup:  func(*mockService) {},
			status: http.StatusBadRequest,
		},
		{
			name: "create same team", method: http.MethodPost, target: "/matches", body: body,
			setup: func(m *mockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrSameTeam)
			},
			status: http.StatusBadRequest,
		},
		{
			name: "create wrapped season error", method: http.MethodPost, target: "/matches", body: body,
			setup: func(m *mockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: team 2", model.ErrTeamNotInSeason))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "update missing", method: http.MethodPut, target: "/matches/5", body: body,
			setup: func(m *mockService) {
				m.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil, model.ErrMatchNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name: "delete failure", method: http.MethodDelete, target: "/matches/5",
			setup: func(m *mockService) {
				m.On("Delete", mock.Anything, int64(5)).Return(errors.New("recompute failed"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "delete", method: http.MethodDelete, target: "/matches/6",
			setup: func(m *mockService) {
				m.On("Delete", mock.Anything, int64(6)).Return(nil)
			},
			status: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setup(svc)
			r := setupRouter(t, svc)

			w := serve(r, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
