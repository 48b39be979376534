package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentionwatch/internal/domain"
)

// RankingService is the slice of the ranking service the handlers use.
type RankingService interface {
	Compute(ctx context.Context, month domain.Month) (*domain.RankingResult, error)
	Stats(ctx context.Context, month domain.Month) (*domain.CoverageStats, error)
	MonthOverMonth(ctx context.Context, source domain.Source, month domain.Month) ([]domain.MoMEntry, error)
}

type CollectorService interface {
	Collect(ctx context.Context, month domain.Month) ([]domain.CollectStats, error)
}

type RankingHandler struct {
	rankings  RankingService
	collector CollectorService
}

func NewRankingHandler(rankings RankingService, collector CollectorService) *RankingHandler {
	return &RankingHandler{rankings: rankings, collector: collector}
}

// Comprehensive serves GET /api/ranking/comprehensive?month=YYYY-MM.
func (h *RankingHandler) Comprehensive(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	result, err := h.rankings.Compute(c.Request.Context(), month)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"target_month":      month.String(),
		"total_companies":   len(result.Entries),
		"data_sources":      domain.Sources,
		"sources_available": result.Available,
		"results":           result.Entries,
	})
}

// Stats serves GET /api/ranking/stats?month=YYYY-MM.
func (h *RankingHandler) Stats(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	stats, err := h.rankings.Stats(c.Request.Context(), month)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"target_month":        month.String(),
		"total_companies":     stats.TotalCompanies,
		"companies_with_data": stats.WithData,
		"coverage_rate":       stats.CoverageRate,
	})
}

// MonthOverMonth serves GET /api/analysis/mom?month=YYYY-MM&source=gdelt.
func (h *RankingHandler) MonthOverMonth(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	source := domain.Source(c.DefaultQuery("source", string(domain.SourceGDELT)))
	if source != domain.SourceGDELT && source != domain.SourceNewsAPI {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source must be gdelt or newsapi"})
		return
	}

	entries, err := h.rankings.MonthOverMonth(c.Request.Context(), source, month)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"target_month": month.String(),
		"source":       source,
		"results":      entries,
	})
}

// Collect serves POST /api/collect?month=YYYY-MM and runs a collection
// synchronously.
func (h *RankingHandler) Collect(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	stats, err := h.collector.Collect(c.Request.Context(), month)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"target_month": month.String(),
		"stats":        stats,
	})
}

func monthParam(c *gin.Context) (domain.Month, bool) {
	month, err := domain.ParseMonth(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Month{}, false
	}
	return month, true
}

func abortWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
