package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobsmalta/jobsmalta/internal/services"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type JobHandler struct {
	listings services.ListingService
	jobs     services.JobService
}

func NewJobHandler(listings services.ListingService, jobs services.JobService) *JobHandler {
	return &JobHandler{listings: listings, jobs: jobs}
}

// List handles GET /api/jobs with optional filter query params.
func (h *JobHandler) List(c *gin.Context) {
	f := services.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Category: c.Query("category"),
		Region:   c.Query("region"),
	}

	rows, err := h.listings.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get handles GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.listings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

type PostJobRequest struct {
	JobTitle        string   `json:"job_title" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Region          string   `json:"region"`
	Category        string   `json:"category"`
	JobType         string   `json:"job_type"`
	SalaryRange     string   `json:"salary_range"`
	JobDescription  string   `json:"job_description" binding:"required"`
	Requirements    []string `json:"requirements"`
	ExperienceLevel string   `json:"experience_level"`
}

// Post handles POST /api/jobs (employer only).
func (h *JobHandler) Post(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Post", "invalid request body", err))
		return
	}

	job, err := h.jobs.Post(c.Request.Context(), userID, services.PostJobInput{
		JobTitle:        req.JobTitle,
		Location:        req.Location,
		Region:          req.Region,
		Category:        req.Category,
		JobType:         req.JobType,
		SalaryRange:     req.SalaryRange,
		JobDescription:  req.JobDescription,
		Requirements:    req.Requirements,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListMine handles GET /api/employer/jobs.
func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.jobs.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
