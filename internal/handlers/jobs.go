package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medimatch/medimatch-backend/internal/dtos"
	"github.com/medimatch/medimatch-backend/internal/middleware"
	"github.com/medimatch/medimatch-backend/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List is GET /api/jobs with optional search and filter parameters.
func (h *JobHandler) List(c *gin.Context) {
	var query dtos.JobSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query: " + err.Error()})
		return
	}
	jobs, err := h.jobs.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Recent is GET /api/jobs/recent. An unparseable limit falls back to the
// default rather than failing the request.
func (h *JobHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil {
		limit = 0
	}
	jobs, err := h.jobs.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// MyJobs is GET /api/jobs/employer/my-jobs.
func (h *JobHandler) MyJobs(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	jobs, err := h.jobs.ListByPoster(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create is POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is PUT /api/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), principal.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is DELETE /api/jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	if err := h.jobs.Delete(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// Save is POST /api/jobs/:id/save (legacy saved-jobs relation).
func (h *JobHandler) Save(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	if err := h.jobs.SaveForUser(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job saved successfully"})
}

// Unsave is DELETE /api/jobs/:id/unsave (legacy saved-jobs relation).
func (h *JobHandler) Unsave(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	if err := h.jobs.UnsaveForUser(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved successfully"})
}

// SavedJobs is GET /api/jobs/saved-jobs (legacy saved-jobs relation).
func (h *JobHandler) SavedJobs(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	jobs, err := h.jobs.ListSavedForUser(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
