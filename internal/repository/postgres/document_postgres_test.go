package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

var versionColumns = []string{
	"folder_id", "document_guid", "version", "file_name", "original_filename",
	"source_document_id", "document_uri", "size", "mime", "blob_storage_container",
	"blob_storage_path", "stage", "document_type", "description", "date_created", "last_modified",
}

func sampleVersion(guid string, folderID int64) model.DocumentVersion {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return model.DocumentVersion{
		DocumentGUID:         guid,
		Version:              1,
		FolderID:             folderID,
		FileName:             "plan.pdf",
		OriginalFilename:     "plan.pdf",
		SourceDocumentID:     "src-1",
		Size:                 10,
		Mime:                 "application/pdf",
		BlobStorageContainer: "appeal-documents",
		BlobStoragePath:      guid + "/v1/plan.pdf",
		Stage:                model.StageAppellantCase,
		DocumentType:         "plans_drawings",
		Description:          "plan",
		DateCreated:          now,
		LastModified:         now,
	}
}

func expectVersionInsert(mock sqlmock.Sqlmock, caseID int64, v model.DocumentVersion) {
	var folder any
	if v.FolderID != 0 {
		folder = v.FolderID
	}
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(v.DocumentGUID, caseID, folder, v.FileName, v.Version).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO document_versions").
		WithArgs(v.DocumentGUID, v.Version, v.FileName, v.OriginalFilename, v.SourceDocumentID,
			v.DocumentURI, v.Size, v.Mime, v.BlobStorageContainer, v.BlobStoragePath,
			v.Stage, v.DocumentType, v.Description, v.DateCreated, v.LastModified).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestDocumentPostgres_AddVersions(t *testing.T) {
	ctx := context.Background()

	t.Run("commits all versions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		v1 := sampleVersion("guid-1", 3)
		v2 := sampleVersion("guid-2", 0)

		mock.ExpectBegin()
		expectVersionInsert(mock, 9, v1)
		expectVersionInsert(mock, 9, v2)
		mock.ExpectCommit()

		err = NewDocumentPostgres(db).AddVersions(ctx, 9, []model.DocumentVersion{v1, v2})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO documents").WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err = NewDocumentPostgres(db).AddVersions(ctx, 9, []model.DocumentVersion{sampleVersion("guid-1", 1)})

		assert.ErrorContains(t, err, "guid-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch does nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, NewDocumentPostgres(db).AddVersions(ctx, 9, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDocumentPostgres_FindByGUID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		v := sampleVersion("guid-1", 4)
		rows := sqlmock.NewRows(versionColumns).
			AddRow(v.FolderID, v.DocumentGUID, v.Version, v.FileName, v.OriginalFilename,
				v.SourceDocumentID, v.DocumentURI, v.Size, v.Mime, v.BlobStorageContainer,
				v.BlobStoragePath, v.Stage, v.DocumentType, v.Description, v.DateCreated, v.LastModified)

		mock.ExpectQuery("SELECT (.+) FROM documents d JOIN document_versions v (.+) WHERE d.guid = ?").
			WithArgs("guid-1").
			WillReturnRows(rows)

		got, err := repo.FindByGUID(ctx, "guid-1")

		require.NoError(t, err)
		assert.Equal(t, &v, got)
	})

	t.Run("unfiled document", func(t *testing.T) {
		v := sampleVersion("guid-2", 0)
		rows := sqlmock.NewRows(versionColumns).
			AddRow(nil, v.DocumentGUID, v.Version, v.FileName, v.OriginalFilename,
				v.SourceDocumentID, v.DocumentURI, v.Size, v.Mime, v.BlobStorageContainer,
				v.BlobStoragePath, v.Stage, v.DocumentType, v.Description, v.DateCreated, v.LastModified)

		mock.ExpectQuery("SELECT (.+) FROM documents").WithArgs("guid-2").WillReturnRows(rows)

		got, err := repo.FindByGUID(ctx, "guid-2")

		require.NoError(t, err)
		assert.Zero(t, got.FolderID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByGUID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, doc)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsNoRowsError(t *testing.T) {
	assert.True(t, IsNoRowsError(sql.ErrNoRows))
	assert.True(t, IsNoRowsError(errors.Join(errors.New("ctx"), sql.ErrNoRows)))
	assert.False(t, IsNoRowsError(errors.New("other")))
	assert.False(t, IsNoRowsError(nil))
}
