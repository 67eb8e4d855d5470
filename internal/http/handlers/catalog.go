package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func skillMapID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("invalid skill map id"))
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/skill-maps
func (h *CatalogHandler) ListSkillMaps(c *gin.Context) {
	maps, err := h.catalog.ListSkillMaps(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skill_maps": maps})
}

// GET /api/skill-maps/:id
func (h *CatalogHandler) GetSkillMap(c *gin.Context) {
	id, ok := skillMapID(c)
	if !ok {
		return
	}
	m, err := h.catalog.GetSkillMap(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skill_map": m})
}

// DELETE /api/skill-maps/:id
func (h *CatalogHandler) DeleteSkillMap(c *gin.Context) {
	id, ok := skillMapID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteSkillMap(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
