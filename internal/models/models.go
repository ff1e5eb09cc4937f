package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the enumerated application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'jobseeker'" json:"role"`

	// Legacy saved-jobs relation kept for the /jobs/:id/save endpoints.
	// The SavedJob table is the canonical store.
	SavedJobs []Job `gorm:"many2many:user_saved_jobs" json:"savedJobs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Job struct {
	ID           string   `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Salary       int64    `gorm:"not null" json:"salary"`
	Company      string   `gorm:"not null" json:"company"`
	Location     string   `gorm:"not null" json:"location"`
	Type         string   `gorm:"not null" json:"type"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`
	ContactEmail string   `gorm:"not null" json:"contactEmail"`
	PostedBy     string   `gorm:"type:uuid;index;not null" json:"postedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// ResumeFile is the stored CV reference: the name on disk, the path relative
// to the process working directory, and the name the applicant uploaded.
type ResumeFile struct {
	StoredName   string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
}

type Application struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       string     `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"jobId"`
	Job         Job        `json:"job"`
	ApplicantID string     `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicantId"`
	Applicant   User       `json:"applicant"`
	CV          ResumeFile `gorm:"embedded;embeddedPrefix:cv_" json:"cv"`
	CoverLetter string     `gorm:"type:text;not null" json:"coverLetter"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type SavedJob struct {
	ID      string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"userId"`
	JobID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"jobId"`
	Job     Job       `json:"job"`
	SavedAt time.Time `gorm:"autoCreateTime" json:"savedAt"`
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
