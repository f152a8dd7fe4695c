package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nomadlab/seoulbang-backend-go/internal/service"
	"github.com/nomadlab/seoulbang-backend-go/pkg/response"
)

// ScoreHandler handles administrative score-batch operations
type ScoreHandler struct {
	buildService *service.ScoreBuildService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(buildService *service.ScoreBuildService) *ScoreHandler {
	return &ScoreHandler{buildService: buildService}
}

// RebuildScores handles POST /api/v1/admin/scores/rebuild
func (h *ScoreHandler) RebuildScores(c *gin.Context) {
	batchID, err := h.buildService.Run(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"batch_id": batchID})
}
