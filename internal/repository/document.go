package repository

import (
	"context"
	"errors"

	"appealsapi/internal/model"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write collides with a row that already
	// exists or with a concurrent change.
	ErrConflict = errors.New("conflict")
)

// DocumentRepository defines data access for document versions using SQL queries only.
// No business logic here, only persistence.
type DocumentRepository interface {
	// AddVersions inserts a document row and its first version for every entry.
	// All rows are written in one transaction.
	AddVersions(ctx context.Context, caseID int64, versions []model.DocumentVersion) error

	// FindByGUID returns the latest version of a document.
	FindByGUID(ctx context.Context, guid string) (*model.DocumentVersion, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
