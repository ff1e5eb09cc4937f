package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Email already registered", err)
		}
		return common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to fetch user", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewError(common.CodeNotFound, "User not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to fetch user", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewError(common.CodeConflict, "Email already in use", err)
		}
		return common.NewError(common.CodeInternal, "failed to update user", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list users", err)
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return common.NewError(common.CodeInternal, "failed to delete user", err)
	}
	return nil
}

func (r *userRepository) AddSavedJob(ctx context.Context, userID, jobID string) error {
	user := models.User{ID: userID}
	job := models.Job{ID: jobID}
	err := r.db.WithContext(ctx).Model(&user).Association("SavedJobs").Append(&job)
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.NewError(common.CodeInternal, "failed to save job", err)
	}
	return nil
}

func (r *userRepository) RemoveSavedJob(ctx context.Context, userID, jobID string) error {
	user := models.User{ID: userID}
	job := models.Job{ID: jobID}
	if err := r.db.WithContext(ctx).Model(&user).Association("SavedJobs").Delete(&job); err != nil {
		return common.NewError(common.CodeInternal, "failed to unsave job", err)
	}
	return nil
}

func (r *userRepository) ListSavedJobs(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	user := models.User{ID: userID}
	if err := r.db.WithContext(ctx).Model(&user).Association("SavedJobs").Find(&jobs); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list saved jobs", err)
	}
	return jobs, nil
}
