package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type LearnerHandler struct {
	learners services.LearnerService
}

func NewLearnerHandler(learners services.LearnerService) *LearnerHandler {
	return &LearnerHandler{learners: learners}
}

func learnerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("invalid learner id"))
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/learners/:id/paths
func (h *LearnerHandler) ListPaths(c *gin.Context) {
	id, ok := learnerID(c)
	if !ok {
		return
	}
	paths, err := h.learners.ListPaths(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"paths": paths})
}

// GET /api/learners/:id/skills
func (h *LearnerHandler) ListSkills(c *gin.Context) {
	id, ok := learnerID(c)
	if !ok {
		return
	}
	skills, err := h.learners.ListLearnedSkills(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}

// DELETE /api/learners/:id/paths/:path_id
func (h *LearnerHandler) DeletePath(c *gin.Context) {
	id, ok := learnerID(c)
	if !ok {
		return
	}
	pathID, err := uuid.Parse(c.Param("path_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("invalid path id"))
		return
	}
	if err := h.learners.DeletePath(c.Request.Context(), id, pathID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": pathID})
}
