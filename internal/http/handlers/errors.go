package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
)

// respondServiceError maps service errors onto the envelope. Graph defects
// (cycles, dangling references) are unprocessable content, not server
// faults: the request was fine, the catalog is not.
func respondServiceError(c *gin.Context, err error) {
	var cycleErr *pathgraph.CycleError
	var refErr *pathgraph.UnresolvedReferenceError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.As(err, &cycleErr):
		response.RespondError(c, http.StatusUnprocessableEntity, "cyclic_graph", err)
	case errors.As(err, &refErr):
		response.RespondError(c, http.StatusUnprocessableEntity, "unresolved_reference", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
