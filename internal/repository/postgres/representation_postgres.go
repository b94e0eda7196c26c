package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

// RepresentationPostgres is a PostgreSQL implementation of repository.RepresentationRepository.
type RepresentationPostgres struct {
	db *sql.DB
}

// NewRepresentationPostgres creates a new RepresentationPostgres repository.
func NewRepresentationPostgres(db *sql.DB) *RepresentationPostgres {
	return &RepresentationPostgres{db: db}
}

var _ repository.RepresentationRepository = (*RepresentationPostgres)(nil)

const representationColumns = `id, appeal_id, representation_type, status, original_representation,
	redacted_representation, source, represented_id, lpa_code, date_received, date_created`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRepresentation(row rowScanner, extra ...any) (*model.Representation, error) {
	var (
		rep         model.Representation
		representee sql.NullInt64
	)
	dest := []any{
		&rep.ID,
		&rep.CaseID,
		&rep.Type,
		&rep.Status,
		&rep.OriginalRepresentation,
		&rep.RedactedRepresentation,
		&rep.Source,
		&representee,
		&rep.LPACode,
		&rep.DateReceived,
		&rep.DateCreated,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if representee.Valid {
		id := representee.Int64
		rep.RepresentedID = &id
	}
	return &rep, nil
}

// Create stores a representation together with its party and attachments.
func (r *RepresentationPostgres) Create(ctx context.Context, caseID int64, agg *model.RepresentationAggregate) (*model.Representation, error) {
	const qRep = `
		INSERT INTO representations (
			appeal_id, representation_type, status, original_representation,
			source, represented_id, lpa_code, date_received
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date_created
	`
	const qAttach = `
		INSERT INTO representation_attachments (representation_id, document_guid, version)
		VALUES ($1, $2, $3)
	`

	rep := agg.Representation
	rep.CaseID = caseID

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		switch l := agg.Linkage.(type) {
		case model.LinkByNewUser:
			id, err := insertServiceUser(ctx, tx, l.User)
			if err != nil {
				return err
			}
			if err := linkParty(ctx, tx, caseID, id, l.User.Type); err != nil {
				return err
			}
			rep.RepresentedID = &id
		case model.LinkByServiceUser:
			id := l.ServiceUserID
			rep.RepresentedID = &id
		case model.LinkByAuthority:
			rep.LPACode = l.LPACode
		default:
			return model.ErrInvalidPartyLinkage
		}

		var represented any
		if rep.RepresentedID != nil {
			represented = *rep.RepresentedID
		}
		if err := tx.QueryRowContext(ctx, qRep,
			caseID,
			rep.Type,
			rep.Status,
			rep.OriginalRepresentation,
			rep.Source,
			represented,
			rep.LPACode,
			rep.DateReceived,
		).Scan(&rep.ID, &rep.DateCreated); err != nil {
			return fmt.Errorf("insert representation: %w", err)
		}

		if err := insertVersions(ctx, tx, caseID, agg.Attachments); err != nil {
			return err
		}
		for _, a := range agg.Attachments {
			if _, err := tx.ExecContext(ctx, qAttach, rep.ID, a.DocumentGUID, a.Version); err != nil {
				return fmt.Errorf("attach %s: %w", a.DocumentGUID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// FindByID fetches a representation with its case status and the represented party's email.
func (r *RepresentationPostgres) FindByID(ctx context.Context, id int64) (*model.RepresentationRecord, error) {
	const q = `
		SELECT r.id, r.appeal_id, r.representation_type, r.status, r.original_representation,
		       r.redacted_representation, r.source, r.represented_id, r.lpa_code, r.date_received,
		       r.date_created, a.reference, a.status, COALESCE(su.email, '')
		FROM representations r
		JOIN appeals a ON a.id = r.appeal_id
		LEFT JOIN service_users su ON su.id = r.represented_id
		WHERE r.id = $1
	`
	var reference, caseStatus, email string
	rep, err := scanRepresentation(r.db.QueryRowContext(ctx, q, id), &reference, &caseStatus, &email)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("representation %d", id))
	}
	rep.CaseReference = reference
	rec := model.RepresentationRecord{Representation: *rep, CaseStatus: caseStatus, RecipientEmail: email}
	return &rec, nil
}

// UpdateStatus moves a representation from one status to another and optionally
// stores the redacted text. The write only applies while the row still holds from;
// if another request got there first the result is repository.ErrConflict.
func (r *RepresentationPostgres) UpdateStatus(ctx context.Context, id int64, from, to model.RepresentationStatus, redacted *string) (*model.Representation, error) {
	q := `
		UPDATE representations
		SET status = $2, redacted_representation = COALESCE($3, redacted_representation)
		WHERE id = $1 AND status = $4
		RETURNING ` + representationColumns
	const qExists = `SELECT EXISTS (SELECT 1 FROM representations WHERE id = $1)`

	var text any
	if redacted != nil {
		text = *redacted
	}
	rep, err := scanRepresentation(r.db.QueryRowContext(ctx, q, id, to, text, from))
	if err == nil {
		return rep, nil
	}
	if !IsNoRowsError(err) {
		return nil, err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, qExists, id).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("representation %d no longer %s: %w", id, from, repository.ErrConflict)
	}
	return nil, fmt.Errorf("representation %d: %w", id, repository.ErrNotFound)
}

// ListByCase returns a page of a case's representations, newest first, and the total count.
func (r *RepresentationPostgres) ListByCase(ctx context.Context, caseID int64, pq repository.PageQuery) (*repository.PageResult[model.Representation], error) {
	const qCount = `SELECT COUNT(*) FROM representations WHERE appeal_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, caseID).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT ` + representationColumns + `
		FROM representations
		WHERE appeal_id = $1
		ORDER BY date_created DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, caseID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Representation, 0)
	for rows.Next() {
		rep, err := scanRepresentation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Representation]{
		Items: items,
		Total: total,
	}, nil
}
