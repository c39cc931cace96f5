package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/voicenotes/voicenote-api/api/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS())
	engine.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("sets headers on normal requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), types.PremiumHeader)
	})

	t.Run("short-circuits preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPremiumFlag(t *testing.T) {
	engine := gin.New()
	engine.Use(PremiumFlag())
	engine.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"premium": types.IsPremium(c)})
	})

	t.Run("premium header is honored", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(types.PremiumHeader, "true")
		engine.ServeHTTP(w, req)

		assert.JSONEq(t, `{"premium": true}`, w.Body.String())
	})

	t.Run("absent header means default tier", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		engine.ServeHTTP(w, req)

		assert.JSONEq(t, `{"premium": false}`, w.Body.String())
	})
}

func TestPerClientRateLimit(t *testing.T) {
	newEngine := func() *gin.Engine {
		engine := gin.New()
		engine.Use(PremiumFlag())
		engine.Use(PerClientRateLimit(&sync.Map{}, make(chan struct{}), &sync.Once{}, RateLimitTiers{
			DefaultRPS:   1,
			DefaultBurst: 2,
			PremiumRPS:   1,
			PremiumBurst: 5,
		}))
		engine.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	send := func(engine *gin.Engine, premium bool) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		if premium {
			req.Header.Set(types.PremiumHeader, "true")
		}
		engine.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("default tier exhausts its burst", func(t *testing.T) {
		engine := newEngine()
		assert.Equal(t, http.StatusOK, send(engine, false))
		assert.Equal(t, http.StatusOK, send(engine, false))
		assert.Equal(t, http.StatusTooManyRequests, send(engine, false))
	})

	t.Run("premium tier gets the larger budget", func(t *testing.T) {
		engine := newEngine()
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, send(engine, true), "premium request %d", i)
		}
		assert.Equal(t, http.StatusTooManyRequests, send(engine, true))
	})

	t.Run("tiers do not share a bucket", func(t *testing.T) {
		engine := newEngine()
		assert.Equal(t, http.StatusOK, send(engine, false))
		assert.Equal(t, http.StatusOK, send(engine, false))
		assert.Equal(t, http.StatusTooManyRequests, send(engine, false))
		assert.Equal(t, http.StatusOK, send(engine, true), "drained default bucket must not starve premium")
	})
}

func TestRequestSizeLimit(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestSizeLimit(16))
	engine.POST("/test", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request too large"})
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("tiny"))
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/test",
		strings.NewReader("this body is well over the sixteen byte ceiling"))
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestNotFoundHandler(t *testing.T) {
	engine := gin.New()
	engine.NoRoute(NotFoundHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/nope")
}
