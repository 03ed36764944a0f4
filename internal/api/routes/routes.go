package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jobsmalta/jobsmalta/internal/api/handlers"
	"github.com/jobsmalta/jobsmalta/internal/api/middleware"
)

type Deps struct {
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Employer    *handlers.EmployerHandler
	Resume      *handlers.ResumeHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Public catalog
	api.GET("/jobs", d.Job.List)
	api.GET("/jobs/:id", d.Job.Get)

	// Authenticated (JWT)
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/applications", d.Application.Submit)
	auth.GET("/applications/user/:userId", d.Application.ListByUser)
	auth.POST("/resumes", d.Resume.Upload)
	auth.POST("/employer", d.Employer.Register)

	// Employer-only
	employer := auth.Group("/")
	employer.Use(middleware.RequireEmployer())

	employer.POST("/jobs", d.Job.Post)
	employer.GET("/employer/jobs", d.Job.ListMine)
	employer.GET("/employer/me", d.Employer.Me)
	employer.GET("/applications/job/:jobId", d.Application.ListByJob)
	employer.PUT("/applications/:id/status", d.Application.UpdateStatus)
}
