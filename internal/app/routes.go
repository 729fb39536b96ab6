package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gratitude-grove/core/internal/middleware"
	"github.com/gratitude-grove/core/internal/modules/auth"
	"github.com/gratitude-grove/core/internal/modules/diary"
	"github.com/gratitude-grove/core/internal/modules/feed"
	"github.com/gratitude-grove/core/internal/modules/like"
	pkgredis "github.com/gratitude-grove/core/internal/pkg/redis"
	"github.com/gratitude-grove/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)
	optionalAuthMW := middleware.OptionalAuth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "gratitude-grove-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/gratitude-grove/core",
	}

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group("/api/v1")

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	diary.NewHandler(diary.NewService(db, a.cfg.Location())).RegisterRoutes(api, authMW)

	likeSvc := like.NewService(db)
	like.NewHandler(likeSvc).RegisterRoutes(api, authMW)
	feed.NewHandler(feed.NewService(db, likeSvc)).RegisterRoutes(api, optionalAuthMW)
}

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return d.Truncate(time.Second).String()
	}
	if d < time.Hour {
		return d.Truncate(time.Minute).String()
	}
	if d < 24*time.Hour {
		return d.Truncate(time.Hour).String()
	}
	return d.Truncate(24 * time.Hour).String()
}
