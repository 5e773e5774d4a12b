package file

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/iramedia/workreport-backend-go/internal/pkg/storage"
)

// Service stores submission attachments under random names so uploads can
// never collide or expose the original filename on disk.
type Service interface {
	Store(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)

	// Remove deletes a stored attachment. Failures are swallowed: a stale
	// file on disk is preferable to failing the owning operation.
	Remove(ctx context.Context, path string)

	// FullPath resolves a stored key to the path served to the client.
	FullPath(path string) (string, error)
}

type ServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) Service {
	return &ServiceImpl{storage: fileStorage}
}

// Store implements Service.
func (s *ServiceImpl) Store(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	path, err := s.storage.Upload(ctx, file, name)
	if err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}
	return path, nil
}

// Remove implements Service.
func (s *ServiceImpl) Remove(ctx context.Context, path string) {
	if path == "" {
		return
	}
	_ = s.storage.Delete(ctx, path)
}

// FullPath implements Service.
func (s *ServiceImpl) FullPath(path string) (string, error) {
	return s.storage.FullPath(path)
}
