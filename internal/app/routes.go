package app

import (
	"net/http"
	"time"

	"github.com/aisumm/core/internal/middleware"
	"github.com/aisumm/core/internal/modules/auth/user"
	"github.com/aisumm/core/internal/modules/summarize"
	"github.com/aisumm/core/internal/modules/summary"
	pkgredis "github.com/aisumm/core/internal/pkg/redis"
	"github.com/aisumm/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client, model summarize.ModelClient) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "aisumm-core",
		"version": "1.0.0",
	}

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(rc.Raw()))

	api.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		dbOK := true
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbOK = false
		}
		redisOK := rc.Ping(ctx) == nil

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"database": dbOK,
			"redis":    redisOK,
			"time":     time.Now().UTC(),
		})
	})

	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)

	extractor := summarize.NewExtractor(a.cfg.Extract.Timeout())
	summarizeSvc := summarize.NewService(db, extractor, model, a.logger)
	summarize.NewHandler(summarizeSvc).RegisterRoutes(api, authMW)

	summary.NewHandler(summary.NewService(db)).RegisterRoutes(api, authMW)
}
