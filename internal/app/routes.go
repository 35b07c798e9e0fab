package app

import (
	"net/http"

	"github.com/florarium/core/internal/middleware"
	"github.com/florarium/core/internal/modules/admin"
	"github.com/florarium/core/internal/modules/auth"
	"github.com/florarium/core/internal/modules/flora"
	"github.com/florarium/core/internal/modules/report"
	pkgredis "github.com/florarium/core/internal/pkg/redis"
	"github.com/florarium/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and duplicate-write suppression run on every route.
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	flora.NewHandler(flora.NewService(db)).RegisterRoutes(api, authMW)
	report.NewHandler(report.NewService(db)).RegisterRoutes(api, authMW)
	admin.NewHandler(admin.NewService(db, rc)).RegisterRoutes(api, authMW)
}
