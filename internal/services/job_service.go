package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/dtos"
	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
)

const defaultRecentLimit = 6

type JobService struct {
	jobs  repository.JobRepository
	users repository.UserRepository
}

func NewJobService(jobs repository.JobRepository, users repository.UserRepository) *JobService {
	return &JobService{jobs: jobs, users: users}
}

// Search translates the raw query values into store filters and, when a
// search term is present, re-ranks the store's newest-first result by
// relevance.
func (s *JobService) Search(ctx context.Context, query dtos.JobSearchQuery) ([]models.Job, error) {
	filters := repository.JobFilters{
		Search:   strings.TrimSpace(query.Search),
		Type:     query.Type,
		Location: query.Location,
	}

	min, err := parseSalaryBound(query.SalaryMin, "salaryMin")
	if err != nil {
		return nil, err
	}
	max, err := parseSalaryBound(query.SalaryMax, "salaryMax")
	if err != nil {
		return nil, err
	}
	if min != nil && max != nil && *max < *min {
		return nil, common.NewError(common.CodeValidation, "salaryMax must be greater than or equal to salaryMin", nil)
	}
	filters.SalaryMin = min
	filters.SalaryMax = max

	jobs, err := s.jobs.Search(ctx, filters)
	if err != nil {
		return nil, err
	}
	if filters.Search != "" {
		jobs = rankByRelevance(jobs, filters.Search)
	}
	return jobs, nil
}

func parseSalaryBound(raw, field string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil, common.NewError(common.CodeValidation, field+" must be a non-negative integer", err)
	}
	return &value, nil
}

func (s *JobService) Recent(ctx context.Context, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.jobs.ListRecent(ctx, limit)
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	return s.jobs.ListByPoster(ctx, userID)
}

func (s *JobService) Create(ctx context.Context, posterID string, req dtos.JobCreateRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Salary:       *req.Salary,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Requirements: req.Requirements,
		ContactEmail: req.ContactEmail,
		PostedBy:     posterID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, callerID, jobID string, req dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != callerID {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to update this job", nil)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.ContactEmail != nil {
		job.ContactEmail = *req.ContactEmail
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, callerID, jobID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedBy != callerID {
		return common.NewError(common.CodeForbidden, "Not authorized to delete this job", nil)
	}
	return s.jobs.Delete(ctx, jobID)
}

// Legacy saved-jobs endpoints operate on the relation stored with the user
// record rather than the SavedJob table.

func (s *JobService) SaveForUser(ctx context.Context, userID, jobID string) error {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return err
	}
	return s.users.AddSavedJob(ctx, userID, jobID)
}

func (s *JobService) UnsaveForUser(ctx context.Context, userID, jobID string) error {
	return s.users.RemoveSavedJob(ctx, userID, jobID)
}

func (s *JobService) ListSavedForUser(ctx context.Context, userID string) ([]models.Job, error) {
	return s.users.ListSavedJobs(ctx, userID)
}
