package services

import (
	"context"

	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
)

// AdminService serves the admin dashboard. Role gating happens in the router
// middleware; these operations act on any record.
type AdminService struct {
	users repository.UserRepository
	jobs  repository.JobRepository
}

func NewAdminService(users repository.UserRepository, jobs repository.JobRepository) *AdminService {
	return &AdminService{users: users, jobs: jobs}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

func (s *AdminService) DeleteJob(ctx context.Context, jobID string) error {
	return s.jobs.Delete(ctx, jobID)
}
