package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// StorageService defines the business logic contract for upload URLs.
type StorageService interface {
	UploadURL(ctx context.Context, name string) (string, error)
}

type storageService struct {
	presigner Presigner
}

// NewStorageService creates a new storage service with the given
// presigner.
func NewStorageService(presigner Presigner) StorageService {
	return &storageService{presigner: presigner}
}

// UploadURL validates the object name and returns a presigned PUT URL
// for it.
func (s *storageService) UploadURL(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.NewBadRequest("name is required")
	}
	// Path traversal in an object key never reaches the filesystem but
	// still pollutes the bucket layout.
	if strings.Contains(name, "..") || strings.HasPrefix(name, "/") {
		return "", apperror.NewBadRequest("invalid object name")
	}

	url, err := s.presigner.PresignPut(ctx, name)
	if err != nil {
		return "", apperror.NewInternal(fmt.Errorf("generating upload url: %w", err))
	}
	return url, nil
}
