package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(origins))
	r.GET("/standings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rows": []string{}})
	})
	return r
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin", func(t *testing.T) {
		router := setupCORSRouter([]string{"https://league.example"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/standings", nil)
		req.Header.Set("Origin", "https://league.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://league.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		router := setupCORSRouter([]string{"https://league.example"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/standings", nil)
		req.Header.Set("Origin", "https://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		router := setupCORSRouter([]string{"https://league.example"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/standings", nil)
		req.Header.Set("Origin", "https://league.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://league.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("disabled without origins", func(t *testing.T) {
		router := setupCORSRouter(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/standings", nil)
		req.Header.Set("Origin", "https://league.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
