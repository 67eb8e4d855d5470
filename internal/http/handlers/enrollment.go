package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/http/response"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type EnrollmentHandler struct {
	enrollments services.EnrollmentService
}

func NewEnrollmentHandler(enrollments services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// POST /api/enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var in services.EnrollInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	res, err := h.enrollments.Enroll(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if res.Path != nil {
		response.RespondCreated(c, res)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/progress
//
// The body doubles as the payload shape posted by the external progress
// event relay, so intake and API share one contract.
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	var rep services.ProgressReport
	if err := c.ShouldBindJSON(&rep); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	res, err := h.enrollments.UpdateProgress(c.Request.Context(), rep)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}
