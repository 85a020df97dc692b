package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/khaihkd/tomochain-governance/internal/api/middleware"
	"github.com/khaihkd/tomochain-governance/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestRecovery(t *testing.T) {
	t.Run("turns a panic into a 500 response", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(c *gin.Context) {
			panic("handler exploded")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})

	t.Run("leaves healthy handlers alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSetupCORS(t *testing.T) {
	doPreflight := func(handler gin.HandlerFunc, origin string) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(handler)
		router.GET("/api/config", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodOptions, "/api/config", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("open by default", func(t *testing.T) {
		w := doPreflight(middleware.SetupCORS(nil), "https://anywhere.example.com")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("pinned origins admit only themselves", func(t *testing.T) {
		cors := middleware.SetupCORS([]string{"https://governance.example.com"})

		allowed := doPreflight(cors, "https://governance.example.com")
		assert.Equal(t, http.StatusNoContent, allowed.Code)
		assert.Equal(t, "https://governance.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

		denied := doPreflight(cors, "https://other.example.com")
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})
}
