package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/voicenotes/voicenote-api/api/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGet(t *testing.T) {
	engine := gin.New()
	RegisterRoutes(engine, &types.Dependencies{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "not configured")
}
