package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentionwatch/internal/domain"
)

type CompetitorService interface {
	Profiles(ctx context.Context) ([]domain.CompetitorProfile, error)
}

type CompetitorHandler struct {
	competitors CompetitorService
}

func NewCompetitorHandler(competitors CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{competitors: competitors}
}

// List serves GET /api/competitors: the curated competitor sheet with
// portfolio overlap and famous-VC highlighting applied.
func (h *CompetitorHandler) List(c *gin.Context) {
	profiles, err := h.competitors.Profiles(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(profiles),
		"profiles": profiles,
	})
}
