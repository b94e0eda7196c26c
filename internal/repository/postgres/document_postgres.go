package postgres

import (
	"context"
	"database/sql"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// AddVersions inserts all versions of a batch in a single transaction.
func (r *DocumentPostgres) AddVersions(ctx context.Context, caseID int64, versions []model.DocumentVersion) error {
	if len(versions) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return insertVersions(ctx, tx, caseID, versions)
	})
}

// FindByGUID fetches the latest version of a document.
func (r *DocumentPostgres) FindByGUID(ctx context.Context, guid string) (*model.DocumentVersion, error) {
	const q = `
		SELECT d.folder_id, v.document_guid, v.version, v.file_name, v.original_filename,
		       v.source_document_id, v.document_uri, v.size, v.mime, v.blob_storage_container,
		       v.blob_storage_path, v.stage, v.document_type, v.description, v.date_created, v.last_modified
		FROM documents d
		JOIN document_versions v ON v.document_guid = d.guid AND v.version = d.latest_version
		WHERE d.guid = $1
	`
	var (
		v        model.DocumentVersion
		folderID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, q, guid).Scan(
		&folderID,
		&v.DocumentGUID,
		&v.Version,
		&v.FileName,
		&v.OriginalFilename,
		&v.SourceDocumentID,
		&v.DocumentURI,
		&v.Size,
		&v.Mime,
		&v.BlobStorageContainer,
		&v.BlobStoragePath,
		&v.Stage,
		&v.DocumentType,
		&v.Description,
		&v.DateCreated,
		&v.LastModified,
	)
	if err != nil {
		return nil, notFound(err, "document "+guid)
	}
	v.FolderID = folderID.Int64
	return &v, nil
}
