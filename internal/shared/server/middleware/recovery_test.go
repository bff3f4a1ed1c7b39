package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRecoveryReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/api/v1/sessions/:id/preview", func(c *gin.Context) {
		c.Set(SessionIDKey, c.Param("id"))
		c.Set(TemplateKey, "modern")
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1/preview", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"code":"internal_error"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
