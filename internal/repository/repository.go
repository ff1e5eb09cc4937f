package repository

import (
	"context"

	"github.com/medimatch/medimatch-backend/internal/models"
)

// JobFilters are the optional criteria for a job search. Nil salary bounds
// mean unbounded. All supplied filters combine with AND; the search term
// matches any of title/company/location/description case-insensitively.
type JobFilters struct {
	Search    string
	Type      string
	SalaryMin *int64
	SalaryMax *int64
	Location  string
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error

	// Legacy saved-jobs relation stored on the user record.
	AddSavedJob(ctx context.Context, userID, jobID string) error
	RemoveSavedJob(ctx context.Context, userID, jobID string) error
	ListSavedJobs(ctx context.Context, userID string) ([]models.Job, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Job, error)

	// Search returns matches ordered by creation time descending.
	Search(ctx context.Context, filters JobFilters) ([]models.Job, error)
	ListRecent(ctx context.Context, limit int) ([]models.Job, error)
	ListByPoster(ctx context.Context, userID string) ([]models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
}

type ApplicationRepository interface {
	// Create returns a conflict error when an application for the same
	// (job, applicant) pair already exists.
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
}

type SavedJobRepository interface {
	// Create returns a conflict error when the (user, job) pair is already saved.
	Create(ctx context.Context, saved *models.SavedJob) error
	DeleteByUserAndJob(ctx context.Context, userID, jobID string) error
	ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error)
}
