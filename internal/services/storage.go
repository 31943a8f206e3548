package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadKind prefixes stored file names so a job description and its resumes
// are told apart in the upload directory.
type UploadKind string

const (
	UploadJobDescription UploadKind = "jd"
	UploadResume         UploadKind = "resume"
)

// StorageService keeps uploads on disk for the lifetime of one analysis.
type StorageService interface {
	EnsureUploadDir() error
	Save(file *multipart.FileHeader, kind UploadKind) (UploadedDocument, error)
	Remove(doc UploadedDocument) error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{uploadPath: uploadPath}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Save copies the upload under a unique name. The extension is kept as sent,
// lower-cased, so the extractor decides whether the format is supported.
// Filename on the result is the name the user uploaded.
func (s *storageService) Save(file *multipart.FileHeader, kind UploadKind) (UploadedDocument, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(s.uploadPath, fmt.Sprintf("%s_%s%s", kind, uuid.NewString(), ext))

	src, err := file.Open()
	if err != nil {
		return UploadedDocument{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return UploadedDocument{}, fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return UploadedDocument{}, fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return UploadedDocument{}, fmt.Errorf("failed to save file: %w", err)
	}

	return UploadedDocument{Filename: filepath.Base(file.Filename), Path: path}, nil
}

// Remove deletes a stored upload. Paths outside the upload directory are refused.
func (s *storageService) Remove(doc UploadedDocument) error {
	if filepath.Dir(doc.Path) != filepath.Clean(s.uploadPath) {
		return fmt.Errorf("refusing to delete %s outside upload directory", doc.Path)
	}
	if err := os.Remove(doc.Path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
