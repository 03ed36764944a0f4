package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobsmalta/jobsmalta/internal/services"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type SubmitApplicationRequest struct {
	JobID       string `json:"jobId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CoverLetter string `json:"coverLetter"`
	ResumeName  string `json:"resumeName"`
}

// Submit handles POST /api/applications. The applicant identity comes from
// the verified token, never from the request body.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeEnvelopeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Submit", "invalid request body", err))
		return
	}

	app, err := h.svc.Submit(c.Request.Context(), services.SubmitInput{
		JobID:       req.JobID,
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		ResumeName:  req.ResumeName,
	})
	if err != nil {
		writeEnvelopeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application submitted successfully!",
		"data":    app,
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeEnvelopeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStatus", "invalid request body", err))
		return
	}

	app, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeEnvelopeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application status updated successfully!",
		"application": app,
	})
}

// ListByJob handles GET /api/applications/job/:jobId (employer view).
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	rows, err := h.svc.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListByUser handles GET /api/applications/user/:userId. Seekers may only
// read their own applications.
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	target := c.Param("userId")
	role, _ := c.Get("role")
	if target != userID && role != "admin" {
		writeError(c, utils.E(utils.CodeForbidden, "ApplicationHandler.ListByUser", "forbidden", nil))
		return
	}

	rows, err := h.svc.ListByUser(c.Request.Context(), target)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
