package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type PathHandler struct {
	paths services.PathService
}

func NewPathHandler(paths services.PathService) *PathHandler {
	return &PathHandler{paths: paths}
}

type computePathRequest struct {
	SkillMapID   uuid.UUID   `json:"skill_map_id" binding:"required"`
	GoalSkillIDs []uuid.UUID `json:"goal_skill_ids" binding:"required"`
	LearnerID    *uuid.UUID  `json:"learner_id,omitempty"`
}

// POST /api/paths/compute
func (h *PathHandler) ComputePath(c *gin.Context) {
	var req computePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	path, err := h.paths.ComputePath(c.Request.Context(), req.SkillMapID, req.GoalSkillIDs, req.LearnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"path": path, "unreached": path.Unreached()})
}
