package server

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const apiPrefix = "/api/v1"

// RouterDeps bundles the handlers mounted on the router.
type RouterDeps struct {
	Config         config.Config
	BuilderHandler *builder.Handler
	RateLimits     map[string]middleware.RateLimitRule
	// HealthChecks are run by /health. Any failure turns the response 503.
	HealthChecks map[string]func(context.Context) error
}

const healthTimeout = 2 * time.Second

// DefaultRateLimits bounds per-identity request rates by route group.
func DefaultRateLimits() map[string]middleware.RateLimitRule {
	return map[string]middleware.RateLimitRule{
		middleware.GroupEdit:   {Rate: 20, Burst: 60},
		middleware.GroupUpload: {Rate: 0.5, Burst: 5},
		middleware.GroupExport: {Rate: 0.2, Burst: 3},
		// Guest ids are free to mint, so session creation is bounded per IP.
		middleware.GroupSession: {Rate: 0.1, Burst: 10},
	}
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if env := deps.Config.Env; env == "production" || env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	limits := deps.RateLimits
	if limits == nil {
		limits = DefaultRateLimits()
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(isPublicPath),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    limits,
			GroupFor: rateLimitGroup,
			KeyFor:   rateLimitKey,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group(apiPrefix)
	api.GET("/health", healthHandler(deps.HealthChecks))
	registerMeRoutes(api)
	if deps.BuilderHandler != nil {
		deps.BuilderHandler.RegisterRoutes(api)
	}

	return r
}

func healthHandler(checks map[string]func(context.Context) error) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		ok := true
		results := make(map[string]string, len(names))
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				ok = false
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": results})
	}
}

// isPublicPath lists routes that work without a guest identity: the catalog
// and thumbnails are the same for everyone, and the display page falls back
// to a query parameter.
func isPublicPath(path string) bool {
	switch {
	case path == "/metrics",
		path == apiPrefix+"/health",
		path == apiPrefix+"/templates",
		path == apiPrefix+"/thumbnails",
		path == apiPrefix+"/display":
		return true
	case strings.HasPrefix(path, apiPrefix+"/templates/"):
		return true
	default:
		return false
	}
}

func rateLimitGroup(c *gin.Context) string {
	route := c.FullPath()
	switch {
	case route == apiPrefix+"/sessions" && c.Request.Method == http.MethodPost:
		return middleware.GroupSession
	case strings.HasSuffix(route, "/edits"), strings.HasSuffix(route, "/template"):
		return middleware.GroupEdit
	case strings.HasSuffix(route, "/image") && c.Request.Method == http.MethodPost:
		return middleware.GroupUpload
	case strings.HasSuffix(route, "/export"):
		return middleware.GroupExport
	default:
		return ""
	}
}

func rateLimitKey(c *gin.Context, group string) string {
	if id := middleware.UserIDFromContext(c); id != "" && group != middleware.GroupSession {
		return id
	}
	return c.ClientIP()
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
