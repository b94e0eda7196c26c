package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when sentinel exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, EnsureMigrated(ctx, db, zap.NewNop(), "localhost"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs every step", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WithArgs(sentinelTable).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		for range steps {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		require.NoError(t, EnsureMigrated(ctx, db, zap.NewNop(), "localhost"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops on failing step", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS appeals").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS service_users").WillReturnError(errors.New("boom"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "localhost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create_table_service_users")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel check fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").WillReturnError(errors.New("conn refused"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "localhost")
		assert.ErrorContains(t, err, "sentinel")
	})
}
