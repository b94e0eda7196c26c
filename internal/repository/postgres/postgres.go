package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// IsNoRowsError reports whether err came from a query that matched nothing.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound and leaves other errors alone.
func notFound(err error, what string) error {
	if IsNoRowsError(err) {
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	}
	return err
}

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// conflict maps a unique violation to repository.ErrConflict and leaves other errors alone.
func conflict(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", what, repository.ErrConflict)
	}
	return err
}

// withTx runs fn inside a transaction, rolling back if fn or the commit fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// insertVersions writes a document row and its first version for each entry.
func insertVersions(ctx context.Context, q execer, caseID int64, versions []model.DocumentVersion) error {
	const qDoc = `
		INSERT INTO documents (guid, appeal_id, folder_id, name, latest_version)
		VALUES ($1, $2, $3, $4, $5)
	`
	const qVersion = `
		INSERT INTO document_versions (
			document_guid, version, file_name, original_filename, source_document_id,
			document_uri, size, mime, blob_storage_container, blob_storage_path,
			stage, document_type, description, date_created, last_modified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	for _, v := range versions {
		if _, err := q.ExecContext(ctx, qDoc,
			v.DocumentGUID,
			caseID,
			nullableID(v.FolderID),
			v.FileName,
			v.Version,
		); err != nil {
			return fmt.Errorf("insert document %s: %w", v.DocumentGUID, err)
		}
		if _, err := q.ExecContext(ctx, qVersion,
			v.DocumentGUID,
			v.Version,
			v.FileName,
			v.OriginalFilename,
			v.SourceDocumentID,
			v.DocumentURI,
			v.Size,
			v.Mime,
			v.BlobStorageContainer,
			v.BlobStoragePath,
			v.Stage,
			v.DocumentType,
			v.Description,
			v.DateCreated,
			v.LastModified,
		); err != nil {
			return fmt.Errorf("insert document version %s: %w", v.DocumentGUID, err)
		}
	}
	return nil
}

// insertServiceUser stores u and returns its id.
func insertServiceUser(ctx context.Context, q execer, u model.ServiceUser) (int64, error) {
	const qUser = `
		INSERT INTO service_users (
			service_user_type, salutation, first_name, last_name, organisation, email, phone,
			address_line1, address_line2, address_town, address_county, postcode
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	var addr model.Address
	if u.Address != nil {
		addr = *u.Address
	}
	var id int64
	err := q.QueryRowContext(ctx, qUser,
		u.Type,
		u.Salutation,
		u.FirstName,
		u.LastName,
		u.Organisation,
		u.Email,
		u.Phone,
		addr.Line1,
		addr.Line2,
		addr.Town,
		addr.County,
		addr.Postcode,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert service user: %w", err)
	}
	return id, nil
}

func linkParty(ctx context.Context, q execer, caseID, serviceUserID int64, role string) error {
	const qLink = `
		INSERT INTO appeal_parties (appeal_id, service_user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	if _, err := q.ExecContext(ctx, qLink, caseID, serviceUserID, role); err != nil {
		return fmt.Errorf("link %s: %w", role, err)
	}
	return nil
}

func insertRelationships(ctx context.Context, q execer, caseID int64, refs []string) error {
	const qRel = `
		INSERT INTO appeal_relationships (appeal_id, related_reference)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, ref := range refs {
		if _, err := q.ExecContext(ctx, qRel, caseID, ref); err != nil {
			return fmt.Errorf("insert related reference %s: %w", ref, err)
		}
	}
	return nil
}
