package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medimatch/medimatch-backend/internal/middleware"
	"github.com/medimatch/medimatch-backend/internal/services"
)

type SavedJobHandler struct {
	saved *services.SavedJobService
}

func NewSavedJobHandler(saved *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

// Save is POST /api/saved-jobs/save/:jobId.
func (h *SavedJobHandler) Save(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	saved, err := h.saved.Save(c.Request.Context(), principal.UserID, c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Unsave is DELETE /api/saved-jobs/unsave/:jobId.
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	if err := h.saved.Unsave(c.Request.Context(), principal.UserID, c.Param("jobId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved jobs"})
}

// MySavedJobs is GET /api/saved-jobs/my-saved-jobs.
func (h *SavedJobHandler) MySavedJobs(c *gin.Context) {
	principal, _ := middleware.Principal(c)
	saved, err := h.saved.ListForUser(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
