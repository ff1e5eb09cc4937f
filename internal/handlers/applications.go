package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medimatch/medimatch-backend/internal/dtos"
	"github.com/medimatch/medimatch-backend/internal/middleware"
	"github.com/medimatch/medimatch-backend/internal/services"
	"github.com/medimatch/medimatch-backend/internal/storage"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
	files        *storage.ResumeStore
}

func NewApplicationHandler(applications *services.ApplicationService, files *storage.ResumeStore) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, files: files}
}

// Apply is POST /api/applications/job/:id, multipart with a coverLetter field
// and a cv file.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	header, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "CV file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read CV file"})
		return
	}
	defer file.Close()

	application, err := h.applications.Apply(
		c.Request.Context(),
		principal.UserID,
		c.Param("id"),
		c.PostForm("coverLetter"),
		file,
		header.Filename,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListForJob is GET /api/applications/job/:jobId, employer only.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	applications, err := h.applications.ListForJob(c.Request.Context(), principal, c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// MyApplications is GET /api/applications/my-applications, jobseeker only.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	applications, err := h.applications.ListForApplicant(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// DownloadCV is GET /api/applications/cv/:applicationId. The file streams as
// an attachment under its original name.
func (h *ApplicationHandler) DownloadCV(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	application, err := h.applications.GetCV(c.Request.Context(), principal, c.Param("applicationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.files.Exists(application.CV.Path) {
		c.JSON(http.StatusNotFound, gin.H{"message": "CV file not found"})
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(application.CV.Path, application.CV.OriginalName)
}

// UpdateStatus is PATCH /api/applications/:applicationId/status, owning
// employer only.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	application, err := h.applications.UpdateStatus(c.Request.Context(), principal, c.Param("applicationId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Update is PUT /api/applications/:applicationId, multipart with an optional
// replacement cv and/or coverLetter.
func (h *ApplicationHandler) Update(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var cv io.Reader
	originalName := ""
	if header, err := c.FormFile("cv"); err == nil {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read CV file"})
			return
		}
		defer file.Close()
		cv = file
		originalName = header.Filename
	}

	application, err := h.applications.Update(
		c.Request.Context(),
		principal.UserID,
		c.Param("applicationId"),
		c.PostForm("coverLetter"),
		cv,
		originalName,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Delete is DELETE /api/applications/:applicationId, owning applicant only.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	if err := h.applications.Delete(c.Request.Context(), principal.UserID, c.Param("applicationId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
