package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	saved map[string][]string // legacy savedJobs relation: userID -> jobIDs
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*models.User),
		saved: make(map[string][]string),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return common.NewError(common.CodeConflict, "Email already registered", nil)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = testEpoch.Add(time.Duration(len(r.users)) * time.Second)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "User not found", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return common.NewError(common.CodeConflict, "Email already in use", nil)
		}
	}
	if _, ok := r.users[user.ID]; !ok {
		return common.NewError(common.CodeNotFound, "User not found", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AddSavedJob(ctx context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, saved := range r.saved[userID] {
		if saved == jobID {
			return nil
		}
	}
	r.saved[userID] = append(r.saved[userID], jobID)
	return nil
}

func (r *fakeUserRepo) RemoveSavedJob(ctx context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.saved[userID][:0]
	for _, saved := range r.saved[userID] {
		if saved != jobID {
			kept = append(kept, saved)
		}
	}
	r.saved[userID] = kept
	return nil
}

func (r *fakeUserRepo) ListSavedJobs(ctx context.Context, userID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := make([]models.Job, 0, len(r.saved[userID]))
	for _, jobID := range r.saved[userID] {
		jobs = append(jobs, models.Job{ID: jobID})
	}
	return jobs, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = testEpoch.Add(time.Duration(len(r.jobs)) * time.Second)
	clone := *job
	r.jobs = append(r.jobs, &clone)
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.jobs {
		if existing.ID == job.ID {
			clone := *job
			clone.CreatedAt = existing.CreatedAt
			r.jobs[i] = &clone
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "Job not found", nil)
}

func (r *fakeJobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.jobs[:0]
	for _, job := range r.jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	r.jobs = kept
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.ID == id {
			clone := *job
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Job not found", nil)
}

// Search mirrors the SQL predicate semantics: exact type match, closed salary
// range, case-insensitive substring on location, search term ORed over
// title/company/location/description. Newest first.
func (r *fakeJobRepo) Search(ctx context.Context, filters repository.JobFilters) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Job
	for _, job := range r.jobs {
		if filters.Type != "" && job.Type != filters.Type {
			continue
		}
		if filters.SalaryMin != nil && job.Salary < *filters.SalaryMin {
			continue
		}
		if filters.SalaryMax != nil && job.Salary > *filters.SalaryMax {
			continue
		}
		if filters.Location != "" && !containsFold(job.Location, filters.Location) {
			continue
		}
		if filters.Search != "" &&
			!containsFold(job.Title, filters.Search) &&
			!containsFold(job.Company, filters.Search) &&
			!containsFold(job.Location, filters.Search) &&
			!containsFold(job.Description, filters.Search) {
			continue
		}
		matched = append(matched, *job)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (r *fakeJobRepo) ListRecent(ctx context.Context, limit int) ([]models.Job, error) {
	jobs, _ := r.Search(ctx, repository.JobFilters{})
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	jobs, _ := r.Search(ctx, repository.JobFilters{})
	var mine []models.Job
	for _, job := range jobs {
		if job.PostedBy == userID {
			mine = append(mine, job)
		}
	}
	return mine, nil
}

func (r *fakeJobRepo) List(ctx context.Context) ([]models.Job, error) {
	return r.Search(ctx, repository.JobFilters{})
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications []*models.Application
	jobs         *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return common.NewError(common.CodeConflict, "You have already applied for this job", nil)
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = testEpoch.Add(time.Duration(len(r.applications)) * time.Second)
	clone := *application
	r.applications = append(r.applications, &clone)
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, application := range r.applications {
		if application.ID == id {
			clone := *application
			r.populate(&clone)
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (r *fakeApplicationRepo) populate(application *models.Application) {
	if r.jobs == nil {
		return
	}
	if job, err := r.jobs.GetByID(context.Background(), application.JobID); err == nil {
		application.Job = *job
	}
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.applications {
		if existing.ID == application.ID {
			clone := *application
			clone.CreatedAt = existing.CreatedAt
			r.applications[i] = &clone
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.applications[:0]
	for _, application := range r.applications {
		if application.ID != id {
			kept = append(kept, application)
		}
	}
	r.applications = kept
	return nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Application
	for _, application := range r.applications {
		if application.JobID == jobID {
			clone := *application
			r.populate(&clone)
			matched = append(matched, clone)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Application
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			clone := *application
			r.populate(&clone)
			matched = append(matched, clone)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

type fakeSavedJobRepo struct {
	mu    sync.Mutex
	saved []*models.SavedJob
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{}
}

func (r *fakeSavedJobRepo) Create(ctx context.Context, saved *models.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.saved {
		if existing.UserID == saved.UserID && existing.JobID == saved.JobID {
			return common.NewError(common.CodeConflict, "Job already saved", nil)
		}
	}
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	saved.SavedAt = testEpoch.Add(time.Duration(len(r.saved)) * time.Second)
	clone := *saved
	r.saved = append(r.saved, &clone)
	return nil
}

func (r *fakeSavedJobRepo) DeleteByUserAndJob(ctx context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.saved[:0]
	for _, saved := range r.saved {
		if saved.UserID != userID || saved.JobID != jobID {
			kept = append(kept, saved)
		}
	}
	r.saved = kept
	return nil
}

func (r *fakeSavedJobRepo) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.SavedJob
	for _, saved := range r.saved {
		if saved.UserID == userID {
			matched = append(matched, *saved)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SavedAt.After(matched[j].SavedAt)
	})
	return matched, nil
}

type fakeResumeStore struct {
	mu        sync.Mutex
	saves     int
	removed   []string
	removeErr error
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{}
}

func (s *fakeResumeStore) Save(src io.Reader, originalName string) (models.ResumeFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	stored := fmt.Sprintf("cv-%d.pdf", s.saves)
	return models.ResumeFile{
		StoredName:   stored,
		Path:         "uploads/" + stored,
		OriginalName: originalName,
	}, nil
}

func (s *fakeResumeStore) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, path)
	return s.removeErr
}
