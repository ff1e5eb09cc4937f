package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
)

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Create(ctx context.Context, saved *models.SavedJob) error {
	if err := r.db.WithContext(ctx).Omit("Job").Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Job already saved", err)
		}
		return common.NewError(common.CodeInternal, "failed to save job", err)
	}
	return nil
}

func (r *savedJobRepository) DeleteByUserAndJob(ctx context.Context, userID, jobID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{}).Error
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to unsave job", err)
	}
	return nil
}

func (r *savedJobRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list saved jobs", err)
	}
	return saved, nil
}
