package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked before migrating; if it exists the schema is assumed current.
const sentinelTable = "public.appeals"

var steps = []migrationStep{
	{
		Name: "create_table_appeals",
		SQL: `CREATE TABLE IF NOT EXISTS appeals (
  id                      BIGSERIAL   PRIMARY KEY,
  reference               TEXT        NOT NULL UNIQUE,
  status                  TEXT        NOT NULL,
  appeal_type             TEXT        NOT NULL DEFAULT '',
  lpa_code                TEXT        NOT NULL DEFAULT '',
  application_reference   TEXT        NOT NULL DEFAULT '',
  application_date        TIMESTAMPTZ,
  application_decision    TEXT        NOT NULL DEFAULT '',
  submitted_at            TIMESTAMPTZ NOT NULL,
  site_address_line1      TEXT        NOT NULL DEFAULT '',
  site_address_line2      TEXT        NOT NULL DEFAULT '',
  site_address_town       TEXT        NOT NULL DEFAULT '',
  site_address_county     TEXT        NOT NULL DEFAULT '',
  site_address_postcode   TEXT        NOT NULL DEFAULT '',
  site_area_square_metres NUMERIC,
  is_green_belt           BOOLEAN,
  site_access_details     TEXT        NOT NULL DEFAULT '',
  site_safety_details     TEXT        NOT NULL DEFAULT '',
  created_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_service_users",
		SQL: `CREATE TABLE IF NOT EXISTS service_users (
  id                BIGSERIAL PRIMARY KEY,
  service_user_type TEXT      NOT NULL,
  salutation        TEXT      NOT NULL DEFAULT '',
  first_name        TEXT      NOT NULL DEFAULT '',
  last_name         TEXT      NOT NULL DEFAULT '',
  organisation      TEXT      NOT NULL DEFAULT '',
  email             TEXT      NOT NULL DEFAULT '',
  phone             TEXT      NOT NULL DEFAULT '',
  address_line1     TEXT      NOT NULL DEFAULT '',
  address_line2     TEXT      NOT NULL DEFAULT '',
  address_town      TEXT      NOT NULL DEFAULT '',
  address_county    TEXT      NOT NULL DEFAULT '',
  postcode          TEXT      NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_appeal_parties",
		SQL: `CREATE TABLE IF NOT EXISTS appeal_parties (
  appeal_id       BIGINT NOT NULL REFERENCES appeals (id) ON DELETE CASCADE,
  service_user_id BIGINT NOT NULL REFERENCES service_users (id),
  role            TEXT   NOT NULL,
  PRIMARY KEY (appeal_id, service_user_id, role)
);`,
	},
	{
		Name: "create_table_appeal_relationships",
		SQL: `CREATE TABLE IF NOT EXISTS appeal_relationships (
  id                BIGSERIAL PRIMARY KEY,
  appeal_id         BIGINT    NOT NULL REFERENCES appeals (id) ON DELETE CASCADE,
  related_reference TEXT      NOT NULL,
  UNIQUE (appeal_id, related_reference)
);`,
	},
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id        BIGSERIAL PRIMARY KEY,
  appeal_id BIGINT    NOT NULL REFERENCES appeals (id) ON DELETE CASCADE,
  path      TEXT      NOT NULL,
  UNIQUE (appeal_id, path)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  guid           UUID        PRIMARY KEY,
  appeal_id      BIGINT      NOT NULL REFERENCES appeals (id) ON DELETE CASCADE,
  folder_id      BIGINT      REFERENCES folders (id) ON DELETE SET NULL,
  name           TEXT        NOT NULL,
  latest_version INT         NOT NULL DEFAULT 1,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_versions",
		SQL: `CREATE TABLE IF NOT EXISTS document_versions (
  document_guid          UUID        NOT NULL REFERENCES documents (guid) ON DELETE CASCADE,
  version                INT         NOT NULL CHECK (version >= 1),
  file_name              TEXT        NOT NULL,
  original_filename      TEXT        NOT NULL,
  source_document_id     TEXT        NOT NULL DEFAULT '',
  document_uri           TEXT        NOT NULL DEFAULT '',
  size                   BIGINT      NOT NULL DEFAULT 0 CHECK (size >= 0),
  mime                   TEXT        NOT NULL DEFAULT '',
  blob_storage_container TEXT        NOT NULL,
  blob_storage_path      TEXT        NOT NULL,
  stage                  TEXT        NOT NULL,
  document_type          TEXT        NOT NULL DEFAULT '',
  description            TEXT        NOT NULL DEFAULT '',
  date_created           TIMESTAMPTZ NOT NULL,
  last_modified          TIMESTAMPTZ NOT NULL,
  PRIMARY KEY (document_guid, version)
);`,
	},
	{
		Name: "create_table_lpa_questionnaires",
		SQL: `CREATE TABLE IF NOT EXISTS lpa_questionnaires (
  id                     BIGSERIAL   PRIMARY KEY,
  appeal_id              BIGINT      NOT NULL UNIQUE REFERENCES appeals (id) ON DELETE CASCADE,
  submitted_at           TIMESTAMPTZ NOT NULL,
  is_correct_appeal_type BOOLEAN,
  is_conservation_area   BOOLEAN,
  is_green_belt          BOOLEAN,
  site_access_details    TEXT        NOT NULL DEFAULT '',
  site_safety_details    TEXT        NOT NULL DEFAULT '',
  lpa_statement          TEXT        NOT NULL DEFAULT '',
  new_condition_details  TEXT        NOT NULL DEFAULT '',
  notification_methods   JSONB       NOT NULL DEFAULT '[]'
);`,
	},
	{
		Name: "create_table_listed_buildings",
		SQL: `CREATE TABLE IF NOT EXISTS listed_buildings (
  id                      BIGSERIAL PRIMARY KEY,
  lpa_questionnaire_id    BIGINT    NOT NULL REFERENCES lpa_questionnaires (id) ON DELETE CASCADE,
  list_entry              TEXT      NOT NULL,
  affects_listed_building BOOLEAN   NOT NULL
);`,
	},
	{
		Name: "create_table_representations",
		SQL: `CREATE TABLE IF NOT EXISTS representations (
  id                      BIGSERIAL   PRIMARY KEY,
  appeal_id               BIGINT      NOT NULL REFERENCES appeals (id) ON DELETE CASCADE,
  representation_type     TEXT        NOT NULL,
  status                  TEXT        NOT NULL,
  original_representation TEXT        NOT NULL DEFAULT '',
  redacted_representation TEXT        NOT NULL DEFAULT '',
  source                  TEXT        NOT NULL,
  represented_id          BIGINT      REFERENCES service_users (id),
  lpa_code                TEXT        NOT NULL DEFAULT '',
  date_received           TIMESTAMPTZ NOT NULL,
  date_created            TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_representation_attachments",
		SQL: `CREATE TABLE IF NOT EXISTS representation_attachments (
  representation_id BIGINT NOT NULL REFERENCES representations (id) ON DELETE CASCADE,
  document_guid     UUID   NOT NULL,
  version           INT    NOT NULL,
  PRIMARY KEY (representation_id, document_guid, version),
  FOREIGN KEY (document_guid, version) REFERENCES document_versions (document_guid, version) ON DELETE CASCADE
);`,
	},
	{
		Name: "create_index_representations_appeal_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_representations_appeal_id ON representations (appeal_id, date_created DESC);`,
	},
	{
		Name: "create_index_documents_appeal_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_appeal_id ON documents (appeal_id);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("msg", "schema already exists, skipping migration"),
			zap.Duration("duration", time.Since(start)),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
				zap.Duration("step_duration", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
