package services

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
	"github.com/medimatch/medimatch-backend/internal/security"
)

// ResumeStore is the file-storage collaborator for uploaded CVs.
type ResumeStore interface {
	Save(src io.Reader, originalName string) (models.ResumeFile, error)
	Remove(path string) error
}

type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	files        ResumeStore
	log          *logrus.Logger
}

func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, files ResumeStore, log *logrus.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, files: files, log: log}
}

// Apply creates an application with a fresh CV file. The (job, applicant)
// unique constraint rejects a second application, so the file written for a
// losing racer is cleaned up here.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID, coverLetter string, cv io.Reader, originalName string) (*models.Application, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if coverLetter == "" {
		return nil, common.NewError(common.CodeValidation, "coverLetter is required", nil)
	}

	stored, err := s.files.Save(cv, originalName)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CV:          stored,
		CoverLetter: coverLetter,
		Status:      models.StatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		s.removeFile(stored.Path)
		return nil, err
	}
	return s.applications.GetByID(ctx, application.ID)
}

// ListForJob returns a job's applications for the employer who posted it.
func (s *ApplicationService) ListForJob(ctx context.Context, caller security.Principal, jobID string) ([]models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != caller.UserID {
		return nil, common.NewError(common.CodeForbidden, "Access denied", nil)
	}
	return s.applications.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	return s.applications.ListByApplicant(ctx, applicantID)
}

// GetCV returns the application when the caller may download its CV: the
// employer who posted the job, or the applicant who submitted it.
func (s *ApplicationService) GetCV(ctx context.Context, caller security.Principal, applicationID string) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case models.RoleEmployer:
		if application.Job.PostedBy != caller.UserID {
			return nil, common.NewError(common.CodeForbidden, "Access denied", nil)
		}
	case models.RoleJobseeker:
		if application.ApplicantID != caller.UserID {
			return nil, common.NewError(common.CodeForbidden, "Access denied", nil)
		}
	}
	return application, nil
}

// UpdateStatus sets the application status. The status set is flat: any
// enumerated value may replace any other.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller security.Principal, applicationID, status string) (*models.Application, error) {
	if !models.ValidStatus(status) {
		return nil, common.NewError(common.CodeValidation, "Invalid application status", nil)
	}
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Job.PostedBy != caller.UserID {
		return nil, common.NewError(common.CodeForbidden, "Access denied", nil)
	}

	application.Status = status
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}
	return s.applications.GetByID(ctx, applicationID)
}

// Update lets the owning applicant replace the CV and/or cover letter.
func (s *ApplicationService) Update(ctx context.Context, callerID, applicationID, coverLetter string, cv io.Reader, originalName string) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.ApplicantID != callerID {
		return nil, common.NewError(common.CodeForbidden, "Not authorized to update this application", nil)
	}

	if cv != nil {
		stored, err := s.files.Save(cv, originalName)
		if err != nil {
			return nil, err
		}
		s.removeFile(application.CV.Path)
		application.CV = stored
	}
	if coverLetter != "" {
		application.CoverLetter = coverLetter
	}

	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}
	return s.applications.GetByID(ctx, applicationID)
}

// Delete withdraws an application. The stored CV is removed best-effort;
// a failed file deletion never blocks removing the record.
func (s *ApplicationService) Delete(ctx context.Context, callerID, applicationID string) error {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.ApplicantID != callerID {
		return common.NewError(common.CodeForbidden, "Not authorized to delete this application", nil)
	}

	s.removeFile(application.CV.Path)
	return s.applications.Delete(ctx, applicationID)
}

func (s *ApplicationService) removeFile(path string) {
	if path == "" {
		return
	}
	if err := s.files.Remove(path); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("failed to delete CV file")
	}
}
