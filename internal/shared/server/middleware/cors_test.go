package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSOptionsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.OPTIONS("/api/v1/sessions/:id/edits", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions/123/edits", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp)
}

func TestCORSHeadersOnPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.POST("/api/v1/sessions/:id/edits", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/123/edits", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp)
}

func assertCORSHeaders(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected Allow-Origin http://localhost:3000, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected Allow-Methods header")
	}
	if got := resp.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatalf("expected Allow-Headers header")
	}
	if got := resp.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("expected Max-Age 600, got %q", got)
	}
}

func TestCORSExposesExportID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000/"}))
	router.POST("/api/v1/sessions/:id/export", func(c *gin.Context) {
		c.Header(ExportIDHeader, "exp-1")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/123/export", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expose := resp.Header().Get("Access-Control-Expose-Headers")
	for _, h := range []string{"X-Request-Id", "Content-Disposition", ExportIDHeader} {
		if !strings.Contains(expose, h) {
			t.Fatalf("expected %s in expose headers %q", h, expose)
		}
	}
	if allow := resp.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(allow, GuestHeader) {
		t.Fatalf("expected guest header to be allowed, got %q", allow)
	}
}

func TestCORSWildcardAndUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name      string
		allowed   []string
		wantAllow string
		wantCreds string
	}{
		{name: "wildcard", allowed: []string{"*"}, wantAllow: "*"},
		{name: "unknown origin", allowed: []string{"http://localhost:3000"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tc.allowed))
			router.GET("/api/v1/templates", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
			req.Header.Set("Origin", "http://evil.example")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if got := resp.Header().Get("Access-Control-Allow-Origin"); got != tc.wantAllow {
				t.Fatalf("expected Allow-Origin %q, got %q", tc.wantAllow, got)
			}
			if got := resp.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCreds {
				t.Fatalf("expected Allow-Credentials %q, got %q", tc.wantCreds, got)
			}
		})
	}
}
