package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/medimatch/medimatch-backend/internal/middleware"
	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/security"
)

type RouterDependencies struct {
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	SavedJobs    *SavedJobHandler
	Admin        *AdminHandler
	Tokens       *security.TokenProvider
	Log          *logrus.Logger
	CORSOrigin   string
	UploadDir    string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))

	corsConfig := cors.DefaultConfig()
	if deps.CORSOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{deps.CORSOrigin}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded CVs are also reachable statically; the /api/applications/cv
	// route is the access-controlled path.
	r.Static("/uploads", deps.UploadDir)

	authRequired := middleware.RequireAuth(deps.Tokens)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
		auth.PUT("/update-profile", authRequired, deps.Auth.UpdateProfile)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", deps.Jobs.List)
		jobs.GET("/recent", deps.Jobs.Recent)
		jobs.GET("/employer/my-jobs", authRequired, deps.Jobs.MyJobs)
		jobs.GET("/saved-jobs", authRequired, deps.Jobs.SavedJobs)
		jobs.GET("/:id", deps.Jobs.Get)
		jobs.POST("", authRequired, deps.Jobs.Create)
		jobs.PUT("/:id", authRequired, deps.Jobs.Update)
		jobs.DELETE("/:id", authRequired, deps.Jobs.Delete)
		jobs.POST("/:id/save", authRequired, deps.Jobs.Save)
		jobs.DELETE("/:id/unsave", authRequired, deps.Jobs.Unsave)
	}

	savedJobs := api.Group("/saved-jobs", authRequired)
	{
		savedJobs.GET("/my-saved-jobs", deps.SavedJobs.MySavedJobs)
		savedJobs.POST("/save/:jobId", deps.SavedJobs.Save)
		savedJobs.DELETE("/unsave/:jobId", deps.SavedJobs.Unsave)
	}

	applications := api.Group("/applications", authRequired)
	{
		applications.POST("/job/:id", deps.Applications.Apply)
		applications.GET("/job/:jobId", middleware.RequireRole(models.RoleEmployer), deps.Applications.ListForJob)
		applications.GET("/my-applications", middleware.RequireRole(models.RoleJobseeker), deps.Applications.MyApplications)
		applications.GET("/cv/:applicationId", deps.Applications.DownloadCV)
		applications.PATCH("/:applicationId/status", middleware.RequireRole(models.RoleEmployer), deps.Applications.UpdateStatus)
		applications.PUT("/:applicationId", deps.Applications.Update)
		applications.DELETE("/:applicationId", deps.Applications.Delete)
	}

	admin := api.Group("/admin", authRequired, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/all-users", deps.Admin.AllUsers)
		admin.GET("/all-jobs", deps.Admin.AllJobs)
		admin.DELETE("/users/:id", deps.Admin.DeleteUser)
		admin.DELETE("/jobs/:id", deps.Admin.DeleteJob)
	}

	return r
}
