package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type GraphHandler struct {
	paths services.PathService
}

func NewGraphHandler(paths services.PathService) *GraphHandler {
	return &GraphHandler{paths: paths}
}

// GET /api/skill-maps/:id/graph/acyclic
func (h *GraphHandler) CheckAcyclic(c *gin.Context) {
	skillMapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("invalid skill map id"))
		return
	}

	acyclic, err := h.paths.CheckGraphAcyclic(c.Request.Context(), skillMapID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"acyclic": acyclic})
}
