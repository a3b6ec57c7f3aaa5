package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GET /recommendations?city=&interests=&k=
func (rc *RecommendationController) ListRecommendationsHandler(c *gin.Context) {
	var q request_models.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city is required and k must be a number")
		return
	}
	if q.K < 0 || q.K > 50 {
		utils.RespondError(c, http.StatusBadRequest, "k must be between 1 and 50")
		return
	}

	recs, err := rc.recommendationService.Recommend(c.Request.Context(), q.City, request_models.ParseInterests(q.Interests), q.K)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recs, "Fetched recommendations successfully")
}
