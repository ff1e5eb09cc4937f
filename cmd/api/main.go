package main

import (
	"github.com/sirupsen/logrus"

	"github.com/medimatch/medimatch-backend/internal/config"
	"github.com/medimatch/medimatch-backend/internal/database"
	"github.com/medimatch/medimatch-backend/internal/handlers"
	"github.com/medimatch/medimatch-backend/internal/repository"
	"github.com/medimatch/medimatch-backend/internal/security"
	"github.com/medimatch/medimatch-backend/internal/services"
	"github.com/medimatch/medimatch-backend/internal/storage"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	// 2. Database connection and migrations
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database: ", err)
	}
	log.Info("database connection established")

	// 3. File storage for uploaded CVs
	resumes, err := storage.NewResumeStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("storage: ", err)
	}

	// 4. Repositories
	users := repository.NewUserRepository(db)
	jobs := repository.NewJobRepository(db)
	applications := repository.NewApplicationRepository(db)
	savedJobs := repository.NewSavedJobRepository(db)

	// 5. Core services
	tokens := security.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(users, tokens)
	jobService := services.NewJobService(jobs, users)
	applicationService := services.NewApplicationService(applications, jobs, resumes, log)
	savedJobService := services.NewSavedJobService(savedJobs, jobs)
	adminService := services.NewAdminService(users, jobs)

	// 6. HTTP surface
	router := handlers.NewRouter(handlers.RouterDependencies{
		Auth:         handlers.NewAuthHandler(authService),
		Jobs:         handlers.NewJobHandler(jobService),
		Applications: handlers.NewApplicationHandler(applicationService, resumes),
		SavedJobs:    handlers.NewSavedJobHandler(savedJobService),
		Admin:        handlers.NewAdminHandler(adminService),
		Tokens:       tokens,
		Log:          log,
		CORSOrigin:   cfg.CORSOrigin,
		UploadDir:    resumes.Dir(),
	})

	log.Info("server starting on port ", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start: ", err)
	}
}
