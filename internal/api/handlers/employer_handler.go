package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobsmalta/jobsmalta/internal/services"
	"github.com/jobsmalta/jobsmalta/internal/utils"
)

type EmployerHandler struct {
	svc services.EmployerService
}

func NewEmployerHandler(svc services.EmployerService) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

type RegisterEmployerRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
}

func (h *EmployerHandler) Register(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Register", "invalid request body", err))
		return
	}

	e, err := h.svc.Register(c.Request.Context(), userID, req.CompanyName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EmployerHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	e, err := h.svc.Me(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
