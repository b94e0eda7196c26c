package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
	"appealsapi/internal/storage"
)

// DocumentDownload is a document version with a time-limited link to its content.
type DocumentDownload struct {
	Document  model.DocumentVersion `json:"document"`
	URL       string                `json:"url"`
	ExpiresAt time.Time             `json:"expiresAt"`
}

// DocumentService gives access to ingested documents.
type DocumentService interface {
	// Get returns the latest version of a document and a presigned download URL.
	// The blob must exist; documents whose upload never landed are reported as missing.
	Get(ctx context.Context, guid string) (*DocumentDownload, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	ttl   time.Duration
	now   func() time.Time
}

// NewDocumentService constructs a new DocumentService issuing links valid for ttl.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, ttl time.Duration) DocumentService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &documentService{store: store, repo: repo, ttl: ttl, now: time.Now}
}

func (s *documentService) Get(ctx context.Context, guid string) (*DocumentDownload, error) {
	if guid == "" {
		return nil, ErrIDRequired
	}
	v, err := s.repo.FindByGUID(ctx, guid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, guid)
		}
		return nil, err
	}

	if _, err := s.store.Stat(ctx, v.BlobStoragePath); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBlobMissing, v.BlobStoragePath)
		}
		return nil, fmt.Errorf("stat blob: %w", err)
	}

	url, err := s.store.PresignGet(ctx, v.BlobStoragePath, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}
	return &DocumentDownload{Document: *v, URL: url, ExpiresAt: s.now().UTC().Add(s.ttl)}, nil
}
