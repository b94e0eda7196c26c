package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"appealsapi/internal/ingest"
	"appealsapi/internal/logger"
	"appealsapi/internal/metrics"
	"appealsapi/internal/model"
	"appealsapi/internal/repository"
	"appealsapi/internal/schema"
	"appealsapi/internal/transition"
)

// CaseResult is returned after an appellant case has been stored.
type CaseResult struct {
	CaseID    int64  `json:"caseId"`
	Reference string `json:"reference"`
	Documents int    `json:"documents"`
	Renamed   int    `json:"renamed"`
	Unfiled   int    `json:"unfiled"`
}

// QuestionnaireResult is returned after an authority questionnaire has been stored.
type QuestionnaireResult struct {
	CaseID    int64  `json:"caseId"`
	Reference string `json:"reference"`
	Documents int    `json:"documents"`
	Renamed   int    `json:"renamed"`
	Unfiled   int    `json:"unfiled"`
}

// SubmissionService ingests the three kinds of inbound submission.
type SubmissionService interface {
	// IngestCase creates a new appeal from an appellant submission.
	// If storing its documents fails the case is removed again.
	IngestCase(ctx context.Context, payload []byte) (*CaseResult, error)

	// IngestQuestionnaire attaches an authority questionnaire to an existing case.
	IngestQuestionnaire(ctx context.Context, payload []byte) (*QuestionnaireResult, error)

	// IngestRepresentation stores a comment, statement or proof against an existing case.
	IngestRepresentation(ctx context.Context, payload []byte) (*model.Representation, error)
}

// folderPrimer is implemented by folder repositories that can be told about a
// freshly created folder set.
type folderPrimer interface {
	Prime(ctx context.Context, caseID int64, folders []model.Folder)
	Forget(ctx context.Context, caseID int64)
}

// SubmissionDeps groups the collaborators of the submission service.
type SubmissionDeps struct {
	Validator       *schema.Validator
	Assembler       *ingest.Assembler
	Guard           *transition.Guard
	Cases           repository.CaseRepository
	Folders         repository.FolderRepository
	Documents       repository.DocumentRepository
	Representations repository.RepresentationRepository
	Metrics         *metrics.Metrics
	Logger          *zap.Logger
}

type submissionService struct {
	SubmissionDeps
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(deps SubmissionDeps) SubmissionService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &submissionService{SubmissionDeps: deps}
}

func (s *submissionService) decode(kind string, payload []byte, dst any) error {
	if err := s.Validator.Validate(kind, payload); err != nil {
		return err
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

func (s *submissionService) findCase(ctx context.Context, reference string) (*model.CaseSummary, error) {
	c, err := s.Cases.FindByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, reference)
		}
		return nil, err
	}
	return c, nil
}

func (s *submissionService) IngestCase(ctx context.Context, payload []byte) (res *CaseResult, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, schema.KindAppellantCase, start, err) }()
	log := logger.For(ctx, s.Logger)

	var sub model.CaseSubmission
	if err := s.decode(schema.KindAppellantCase, payload, &sub); err != nil {
		return nil, err
	}

	agg, err := s.Assembler.AssembleCase(sub)
	if err != nil {
		return nil, err
	}

	summary, folders, err := s.Cases.CreateCase(ctx, agg)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrCaseExists, agg.Appeal.Reference)
		}
		return nil, fmt.Errorf("create case %s: %w", agg.Appeal.Reference, err)
	}
	primer, _ := s.Folders.(folderPrimer)
	if primer != nil {
		primer.Prime(ctx, summary.ID, folders)
	}

	docs := ingest.FileDocuments(folders, agg.Documents)
	if err := s.Documents.AddVersions(ctx, summary.ID, docs); err != nil {
		// Compensate so the upstream system can resend the whole submission.
		if delErr := s.Cases.DeleteCase(ctx, summary.ID); delErr != nil {
			log.Error("case rollback failed",
				zap.Int64("case_id", summary.ID),
				zap.String("reference", summary.Reference),
				zap.Error(delErr),
			)
			return nil, fmt.Errorf("store documents failed: %v; rollback failed: %v", err, delErr)
		}
		if primer != nil {
			primer.Forget(ctx, summary.ID)
		}
		return nil, fmt.Errorf("store documents: %w", err)
	}

	unfiled := ingest.Unfiled(docs)
	s.Metrics.Documents(schema.KindAppellantCase, agg.RenamedDocuments, unfiled)
	log.Info("appellant case ingested",
		zap.Int64("case_id", summary.ID),
		zap.String("reference", summary.Reference),
		zap.Int("documents", len(docs)),
		zap.Int("renamed", agg.RenamedDocuments),
		zap.Int("unfiled", unfiled),
	)

	return &CaseResult{
		CaseID:    summary.ID,
		Reference: summary.Reference,
		Documents: len(docs),
		Renamed:   agg.RenamedDocuments,
		Unfiled:   unfiled,
	}, nil
}

func (s *submissionService) IngestQuestionnaire(ctx context.Context, payload []byte) (res *QuestionnaireResult, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, schema.KindLPAQuestionnaire, start, err) }()
	log := logger.For(ctx, s.Logger)

	var sub model.QuestionnaireSubmission
	if err := s.decode(schema.KindLPAQuestionnaire, payload, &sub); err != nil {
		return nil, err
	}

	c, err := s.findCase(ctx, sub.CaseData.CaseReference)
	if err != nil {
		return nil, err
	}

	agg, err := s.Assembler.AssembleQuestionnaire(sub)
	if err != nil {
		return nil, err
	}

	folders, err := s.Folders.ListByCase(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	agg.Documents = ingest.FileDocuments(folders, agg.Documents)

	if err := s.Cases.SaveQuestionnaire(ctx, c.ID, agg); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionnaireExists, c.Reference)
		}
		return nil, fmt.Errorf("save questionnaire %s: %w", c.Reference, err)
	}

	unfiled := ingest.Unfiled(agg.Documents)
	s.Metrics.Documents(schema.KindLPAQuestionnaire, agg.RenamedDocuments, unfiled)
	log.Info("lpa questionnaire ingested",
		zap.Int64("case_id", c.ID),
		zap.String("reference", c.Reference),
		zap.Int("documents", len(agg.Documents)),
	)

	return &QuestionnaireResult{
		CaseID:    c.ID,
		Reference: c.Reference,
		Documents: len(agg.Documents),
		Renamed:   agg.RenamedDocuments,
		Unfiled:   unfiled,
	}, nil
}

func (s *submissionService) IngestRepresentation(ctx context.Context, payload []byte) (rep *model.Representation, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, schema.KindRepresentation, start, err) }()
	log := logger.For(ctx, s.Logger)

	var sub model.RepresentationSubmission
	if err := s.decode(schema.KindRepresentation, payload, &sub); err != nil {
		return nil, err
	}

	c, err := s.findCase(ctx, sub.CaseReference)
	if err != nil {
		return nil, err
	}

	var rc ingest.RepresentationContext
	if sub.ServiceUserID != nil {
		// Unparseable ids are left for the assembler to reject.
		if id, perr := strconv.ParseInt(strings.TrimSpace(*sub.ServiceUserID), 10, 64); perr == nil && id > 0 {
			if rc.IsRule6Party, err = s.Cases.IsRule6Party(ctx, c.ID, id); err != nil {
				return nil, fmt.Errorf("look up rule 6 party: %w", err)
			}
		}
	}

	agg, err := s.Assembler.AssembleRepresentation(sub, rc)
	if err != nil {
		return nil, err
	}
	agg.Representation.Status = s.Guard.InitialStatus(agg.Representation.Type, c.Status)

	if len(agg.Attachments) > 0 {
		folders, err := s.Folders.ListByCase(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list folders: %w", err)
		}
		agg.Attachments = ingest.FileDocuments(folders, agg.Attachments)
	}

	stored, err := s.Representations.Create(ctx, c.ID, agg)
	if err != nil {
		return nil, fmt.Errorf("store representation: %w", err)
	}
	stored.CaseReference = c.Reference

	s.Metrics.Documents(schema.KindRepresentation, agg.RenamedDocuments, ingest.Unfiled(agg.Attachments))
	log.Info("representation ingested",
		zap.Int64("representation_id", stored.ID),
		zap.String("reference", c.Reference),
		zap.String("type", string(stored.Type)),
		zap.String("status", string(stored.Status)),
		zap.Int("attachments", len(agg.Attachments)),
	)
	return stored, nil
}

func (s *submissionService) observe(ctx context.Context, kind string, start time.Time, err error) {
	log := logger.For(ctx, s.Logger)
	result := metrics.ResultOK
	switch {
	case err == nil:
	case isRejection(err):
		result = metrics.ResultRejected
		log.Warn("submission rejected", zap.String("kind", kind), zap.Error(err))
	default:
		result = metrics.ResultError
		log.Error("submission failed", zap.String("kind", kind), zap.Error(err))
	}
	s.Metrics.Submission(kind, result, time.Since(start).Seconds())
}

// isRejection reports whether err is caused by the submission itself rather
// than by the service.
func isRejection(err error) bool {
	for _, target := range []error{
		schema.ErrSchemaReject,
		ErrInvalidBody,
		ErrCaseNotFound,
		ErrCaseExists,
		ErrQuestionnaireExists,
		ingest.ErrTooManyCollisions,
		ingest.ErrInvalidDocument,
		model.ErrInvalidPartyLinkage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
