package services

import (
	"context"

	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
)

// SavedJobService backs the canonical saved-job relation with per-(user, job)
// uniqueness enforced by the store.
type SavedJobService struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

func NewSavedJobService(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobService {
	return &SavedJobService{saved: saved, jobs: jobs}
}

func (s *SavedJobService) Save(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := s.saved.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SavedJobService) Unsave(ctx context.Context, userID, jobID string) error {
	return s.saved.DeleteByUserAndJob(ctx, userID, jobID)
}

func (s *SavedJobService) ListForUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	return s.saved.ListByUser(ctx, userID)
}
