package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every route handler the server mounts.
type Handlers struct {
	Ranking     *RankingHandler
	Companies   *CompanyHandler
	Competitors *CompetitorHandler
	Health      *HealthHandler
}

func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/ranking/comprehensive", h.Ranking.Comprehensive)
		api.GET("/ranking/stats", h.Ranking.Stats)
		api.GET("/analysis/mom", h.Ranking.MonthOverMonth)
		api.POST("/collect", h.Ranking.Collect)

		api.GET("/companies", h.Companies.List)
		api.GET("/companies/:id", h.Companies.Get)
		api.PATCH("/companies/:id/status", h.Companies.UpdateStatus)
		api.DELETE("/companies/:id", h.Companies.Delete)
		api.POST("/companies/import", h.Companies.Import)

		api.GET("/competitors", h.Competitors.List)
	}
}
