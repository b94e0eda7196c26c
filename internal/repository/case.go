package repository

import (
	"context"

	"appealsapi/internal/model"
)

// Party roles stored on a case besides appellant and agent.
const RoleRule6Party = "Rule6Party"

// CaseRepository persists appeals and the records hanging directly off them.
type CaseRepository interface {
	// CreateCase inserts the appeal, its parties, related references and the
	// fixed folder set, and returns the stored case with its folders.
	CreateCase(ctx context.Context, agg *model.CaseAggregate) (*model.CaseSummary, []model.Folder, error)

	// DeleteCase removes a case and everything that cascades from it.
	DeleteCase(ctx context.Context, caseID int64) error

	// FindByReference returns ErrNotFound when no case carries the reference.
	FindByReference(ctx context.Context, reference string) (*model.CaseSummary, error)

	// IsRule6Party reports whether serviceUserID is a Rule 6 party on the case.
	IsRule6Party(ctx context.Context, caseID, serviceUserID int64) (bool, error)

	// SaveQuestionnaire stores the questionnaire, its listed buildings, related
	// references and filed documents in one transaction.
	SaveQuestionnaire(ctx context.Context, caseID int64, agg *model.QuestionnaireAggregate) error
}

// FolderRepository reads the folder set of a case.
type FolderRepository interface {
	ListByCase(ctx context.Context, caseID int64) ([]model.Folder, error)
}

// RepresentationRepository persists representations and their attachments.
type RepresentationRepository interface {
	// Create stores the representation, creates or links its party and stores
	// the attachments, all in one transaction.
	Create(ctx context.Context, caseID int64, agg *model.RepresentationAggregate) (*model.Representation, error)

	// FindByID returns the representation with its case status and the email of
	// the party to notify.
	FindByID(ctx context.Context, id int64) (*model.RepresentationRecord, error)

	// UpdateStatus writes the status and, when non-nil, the redacted text, as
	// long as the stored status is still from. Otherwise it returns ErrConflict.
	UpdateStatus(ctx context.Context, id int64, from, to model.RepresentationStatus, redacted *string) (*model.Representation, error)

	ListByCase(ctx context.Context, caseID int64, pq PageQuery) (*PageResult[model.Representation], error)
}
