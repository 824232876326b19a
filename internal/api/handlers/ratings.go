package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/api/models"
)

// ListRatings handles GET /api/v1/ratings
func ListRatings(c *gin.Context) {
	tiers := analysis.Tiers()
	ratings := make([]models.Rating, 0, len(tiers))
	for _, t := range tiers {
		ratings = append(ratings, convertRating(t.RatingResult, t.UpperBound))
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
