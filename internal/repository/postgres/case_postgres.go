package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

// CasePostgres is a PostgreSQL implementation of repository.CaseRepository.
type CasePostgres struct {
	db *sql.DB
}

// NewCasePostgres creates a new CasePostgres repository.
func NewCasePostgres(db *sql.DB) *CasePostgres {
	return &CasePostgres{db: db}
}

var _ repository.CaseRepository = (*CasePostgres)(nil)

// CreateCase inserts the appeal with its parties, related references and folders.
func (r *CasePostgres) CreateCase(ctx context.Context, agg *model.CaseAggregate) (*model.CaseSummary, []model.Folder, error) {
	const qAppeal = `
		INSERT INTO appeals (
			reference, status, appeal_type, lpa_code, application_reference, application_date,
			application_decision, submitted_at, site_address_line1, site_address_line2,
			site_address_town, site_address_county, site_address_postcode,
			site_area_square_metres, is_green_belt, site_access_details, site_safety_details
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	const qFolder = `
		INSERT INTO folders (appeal_id, path)
		VALUES ($1, $2)
		RETURNING id
	`

	a := agg.Appeal
	summary := &model.CaseSummary{Reference: a.Reference, Status: a.Status, LPACode: a.LPACode}
	folders := make([]model.Folder, 0, len(model.CaseFolderPaths))

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, qAppeal,
			a.Reference,
			a.Status,
			a.AppealType,
			a.LPACode,
			a.ApplicationReference,
			a.ApplicationDate,
			a.ApplicationDecision,
			a.SubmittedAt,
			a.SiteAddress.Line1,
			a.SiteAddress.Line2,
			a.SiteAddress.Town,
			a.SiteAddress.County,
			a.SiteAddress.Postcode,
			a.SiteAreaSquareMetres,
			a.IsGreenBelt,
			a.SiteAccessDetails,
			a.SiteSafetyDetails,
		).Scan(&summary.ID); err != nil {
			return fmt.Errorf("insert appeal: %w", conflict(err, "case "+a.Reference))
		}

		for _, p := range []struct {
			user *model.ServiceUser
			role string
		}{
			{agg.Appellant, model.ServiceUserAppellant},
			{agg.Agent, model.ServiceUserAgent},
		} {
			if p.user == nil {
				continue
			}
			id, err := insertServiceUser(ctx, tx, *p.user)
			if err != nil {
				return err
			}
			if err := linkParty(ctx, tx, summary.ID, id, p.role); err != nil {
				return err
			}
		}

		if err := insertRelationships(ctx, tx, summary.ID, agg.RelatedReferences); err != nil {
			return err
		}

		for _, path := range model.CaseFolderPaths {
			f := model.Folder{CaseID: summary.ID, Path: path}
			if err := tx.QueryRowContext(ctx, qFolder, summary.ID, path).Scan(&f.ID); err != nil {
				return fmt.Errorf("insert folder %s: %w", path, err)
			}
			folders = append(folders, f)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return summary, folders, nil
}

// DeleteCase removes a case; dependent rows go with it through ON DELETE CASCADE.
func (r *CasePostgres) DeleteCase(ctx context.Context, caseID int64) error {
	const q = `DELETE FROM appeals WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, caseID)
	return err
}

// FindByReference fetches a case summary by its reference.
func (r *CasePostgres) FindByReference(ctx context.Context, reference string) (*model.CaseSummary, error) {
	const q = `
		SELECT id, reference, status, lpa_code
		FROM appeals
		WHERE reference = $1
	`
	var c model.CaseSummary
	if err := r.db.QueryRowContext(ctx, q, reference).Scan(&c.ID, &c.Reference, &c.Status, &c.LPACode); err != nil {
		return nil, notFound(err, "case "+reference)
	}
	return &c, nil
}

// IsRule6Party reports whether the service user is linked to the case as a Rule 6 party.
func (r *CasePostgres) IsRule6Party(ctx context.Context, caseID, serviceUserID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM appeal_parties
			WHERE appeal_id = $1 AND service_user_id = $2 AND role = $3
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, caseID, serviceUserID, repository.RoleRule6Party).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// SaveQuestionnaire stores an authority questionnaire and its documents.
func (r *CasePostgres) SaveQuestionnaire(ctx context.Context, caseID int64, agg *model.QuestionnaireAggregate) error {
	const qQuestionnaire = `
		INSERT INTO lpa_questionnaires (
			appeal_id, submitted_at, is_correct_appeal_type, is_conservation_area, is_green_belt,
			site_access_details, site_safety_details, lpa_statement, new_condition_details,
			notification_methods
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	const qListed = `
		INSERT INTO listed_buildings (lpa_questionnaire_id, list_entry, affects_listed_building)
		VALUES ($1, $2, $3)
	`

	q := agg.Questionnaire
	methods, err := json.Marshal(q.NotificationMethods)
	if err != nil {
		return fmt.Errorf("encode notification methods: %w", err)
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var qid int64
		if err := tx.QueryRowContext(ctx, qQuestionnaire,
			caseID,
			q.SubmittedAt,
			q.IsCorrectAppealType,
			q.IsConservationArea,
			q.IsGreenBelt,
			q.SiteAccessDetails,
			q.SiteSafetyDetails,
			q.LPAStatement,
			q.NewConditionDetails,
			string(methods),
		).Scan(&qid); err != nil {
			return fmt.Errorf("insert questionnaire: %w", conflict(err, fmt.Sprintf("questionnaire for case %d", caseID)))
		}

		for _, lb := range q.ListedBuildings {
			if _, err := tx.ExecContext(ctx, qListed, qid, lb.EntryNumber, lb.AffectsListedBuilding); err != nil {
				return fmt.Errorf("insert listed building %s: %w", lb.EntryNumber, err)
			}
		}

		if err := insertRelationships(ctx, tx, caseID, agg.RelatedReferences); err != nil {
			return err
		}
		return insertVersions(ctx, tx, caseID, agg.Documents)
	})
}

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

// ListByCase returns the folders of a case ordered by id.
func (r *FolderPostgres) ListByCase(ctx context.Context, caseID int64) ([]model.Folder, error) {
	const q = `
		SELECT id, appeal_id, path
		FROM folders
		WHERE appeal_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := make([]model.Folder, 0, len(model.CaseFolderPaths))
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.CaseID, &f.Path); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return folders, nil
}
