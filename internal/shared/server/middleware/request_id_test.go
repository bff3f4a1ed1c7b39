package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDKeepsValidInbound(t *testing.T) {
	resp := serveWithRequestID(t, "abc-123_x.y")
	if got := resp.Header().Get("X-Request-Id"); got != "abc-123_x.y" {
		t.Fatalf("expected inbound id to be kept, got %q", got)
	}
}

func TestRequestIDReplacesUnsafeInbound(t *testing.T) {
	for _, inbound := range []string{"", "bad id\r\n", strings.Repeat("a", 65), "<script>"} {
		resp := serveWithRequestID(t, inbound)
		got := resp.Header().Get("X-Request-Id")
		if got == inbound {
			t.Fatalf("expected %q to be replaced", inbound)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected generated uuid, got %q", got)
		}
	}
}

func serveWithRequestID(t *testing.T, inbound string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if inbound != "" {
		req.Header["X-Request-Id"] = []string{inbound}
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Body.String() != resp.Header().Get("X-Request-Id") {
		t.Fatalf("context id %q does not match header", resp.Body.String())
	}
	return resp
}
