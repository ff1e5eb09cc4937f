package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
)

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to update job", err)
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to fetch job", err)
	}
	return &job, nil
}

func (r *jobRepository) Search(ctx context.Context, filters JobFilters) ([]models.Job, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		q = q.Where(
			"title ILIKE ? OR company ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			like, like, like, like,
		)
	}
	if filters.Type != "" {
		q = q.Where("type = ?", filters.Type)
	}
	if filters.SalaryMin != nil {
		q = q.Where("salary >= ?", *filters.SalaryMin)
	}
	if filters.SalaryMax != nil {
		q = q.Where("salary <= ?", *filters.SalaryMax)
	}
	if filters.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filters.Location+"%")
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to search jobs", err)
	}
	return jobs, nil
}

func (r *jobRepository) ListRecent(ctx context.Context, limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recent jobs", err)
	}
	return jobs, nil
}

func (r *jobRepository) ListByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Where("posted_by = ?", userID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return jobs, nil
}

func (r *jobRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return jobs, nil
}
