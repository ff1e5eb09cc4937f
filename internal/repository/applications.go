package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create relies on the composite unique index on (job_id, applicant_id), so a
// duplicate is a constraint violation even under concurrent requests.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Omit("Job", "Applicant").Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "You have already applied for this job", err)
		}
		return common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "Application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to fetch application", err)
	}
	return &application, nil
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Omit("Job", "Applicant").Save(application).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	return nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return applications, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return applications, nil
}
