package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobsmalta/jobsmalta/config"
	"github.com/jobsmalta/jobsmalta/internal/api/handlers"
	"github.com/jobsmalta/jobsmalta/internal/api/middleware"
	"github.com/jobsmalta/jobsmalta/internal/api/routes"
	"github.com/jobsmalta/jobsmalta/internal/cache"
	"github.com/jobsmalta/jobsmalta/internal/logger"
	"github.com/jobsmalta/jobsmalta/internal/notify"
	pgrepo "github.com/jobsmalta/jobsmalta/internal/repositories/postgres"
	"github.com/jobsmalta/jobsmalta/internal/services"
	"github.com/jobsmalta/jobsmalta/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	db := config.PostgresDB
	rdb := cache.NewRedisCache(config.RedisClient)

	// Resume bytes go to GCS when a bucket is configured; the submission
	// path itself only ever records a simulated reference.
	var uploader storage.Uploader = storage.NewSimulatedUploader()
	if bucket := os.Getenv("RESUME_BUCKET"); bucket != "" {
		gcsUploader, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcsUploader.Close()
		uploader = gcsUploader
	}

	jobRepo := pgrepo.NewJobRepo(db)
	appRepo := pgrepo.NewApplicationRepo(db)
	employerRepo := pgrepo.NewEmployerRepo(db)
	resumeRepo := pgrepo.NewResumeRepo(db)

	notifier := notify.NewLogNotifier(l)

	listingSvc := services.NewListingService(jobRepo, rdb)
	jobSvc := services.NewJobService(jobRepo, employerRepo, rdb)
	employerSvc := services.NewEmployerService(employerRepo)
	appSvc := services.NewApplicationService(appRepo, storage.NewSimulatedUploader(), notifier, l)
	resumeSvc := services.NewResumeService(resumeRepo, uploader)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Job:         handlers.NewJobHandler(listingSvc, jobSvc),
		Application: handlers.NewApplicationHandler(appSvc),
		Employer:    handlers.NewEmployerHandler(employerSvc),
		Resume:      handlers.NewResumeHandler(resumeSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
