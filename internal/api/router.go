package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwantia/resorter/internal/metrics"
	"github.com/mwantia/resorter/internal/session"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine serving the candidate session
func NewRouter(controller *session.Controller, s store.CandidateStore, logger log.LoggerService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CorrelationIDMiddleware(), LoggerMiddleware(logger), metrics.GinMiddleware())

	router.GET("/health", func(c *gin.Context) {
		if err := s.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "store": s.Kind(), "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": s.Kind()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(router, controller, s, logger)
	return router
}

// RegisterRoutes registers the API routes below /api
func RegisterRoutes(router *gin.Engine, controller *session.Controller, s store.CandidateStore, logger log.LoggerService) {
	candidates := NewCandidateHandler(controller, s, logger)
	presets := NewPresetHandler(s)

	api := router.Group("/api")
	{
		candidateGroup := api.Group("/candidates")
		{
			candidateGroup.GET("", candidates.List)
			candidateGroup.POST("/refresh", candidates.Refresh)
			candidateGroup.POST("/filter", candidates.Filter)
		}

		api.POST("/intake", candidates.Intake)
		api.POST("/intake/upload", candidates.Upload)
		api.POST("/sort", candidates.Sort)

		presetGroup := api.Group("/presets")
		{
			presetGroup.GET("", presets.List)
			presetGroup.GET("/:name", presets.Get)
			presetGroup.PUT("/:name", presets.Save)
			presetGroup.DELETE("/:name", presets.Delete)
		}
	}
}
