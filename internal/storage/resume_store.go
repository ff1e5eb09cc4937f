package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/models"
)

// ResumeStore keeps uploaded CV files under a single directory. Stored names
// are random so concurrent uploads never collide and original names never
// touch the filesystem.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &ResumeStore{dir: dir}, nil
}

func (s *ResumeStore) Dir() string { return s.dir }

func (s *ResumeStore) Save(src io.Reader, originalName string) (models.ResumeFile, error) {
	stored := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return models.ResumeFile{}, common.NewError(common.CodeInternal, "failed to store file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return models.ResumeFile{}, common.NewError(common.CodeInternal, "failed to store file", err)
	}
	return models.ResumeFile{
		StoredName:   stored,
		Path:         path,
		OriginalName: originalName,
	}, nil
}

// Remove deletes a stored file. Callers treat failure as non-fatal.
func (s *ResumeStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	return os.Remove(path)
}

// Exists reports whether the stored file is still on disk.
func (s *ResumeStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
