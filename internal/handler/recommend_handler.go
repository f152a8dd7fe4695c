package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
	"github.com/nomadlab/seoulbang-backend-go/internal/service"
	"github.com/nomadlab/seoulbang-backend-go/pkg/response"
)

// RecommendHandler handles HTTP requests for both recommenders
type RecommendHandler struct {
	areaService     *service.AreaService
	propertyService *service.PropertyService
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(areaService *service.AreaService, propertyService *service.PropertyService) *RecommendHandler {
	return &RecommendHandler{
		areaService:     areaService,
		propertyService: propertyService,
	}
}

// RecommendArea handles POST /api/v1/recommend/area
func (h *RecommendHandler) RecommendArea(c *gin.Context) {
	var user models.UserProfile
	if err := c.ShouldBindJSON(&user); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.areaService.Recommend(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// RecommendProperty handles POST /api/v1/recommend/property
func (h *RecommendHandler) RecommendProperty(c *gin.Context) {
	var req models.PropertyRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.propertyService.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
