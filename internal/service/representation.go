package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"appealsapi/internal/logger"
	"appealsapi/internal/metrics"
	"appealsapi/internal/model"
	"appealsapi/internal/notify"
	"appealsapi/internal/repository"
	"appealsapi/internal/transition"
)

// Paging limits for representation listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// StatusUpdateResult is the outcome of a status change request.
type StatusUpdateResult struct {
	Representation model.Representation `json:"representation"`
	Changed        bool                 `json:"changed"`
	Notified       bool                 `json:"notified"`
}

// RepresentationListResult is the service-level DTO for paginated representations.
type RepresentationListResult struct {
	Items  []model.Representation `json:"data"`
	Total  int                    `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// RepresentationService reviews stored representations.
type RepresentationService interface {
	// UpdateStatus applies a reviewer's change after the transition guard has
	// approved it, and notifies the represented party when the status moved.
	UpdateStatus(ctx context.Context, id int64, change model.StatusChange) (*StatusUpdateResult, error)

	// ListByCase returns a page of a case's representations, newest first.
	ListByCase(ctx context.Context, reference string, limit, offset int) (*RepresentationListResult, error)
}

type representationService struct {
	cases    repository.CaseRepository
	reps     repository.RepresentationRepository
	guard    *transition.Guard
	notifier notify.Dispatcher
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewRepresentationService constructs a new RepresentationService.
func NewRepresentationService(
	cases repository.CaseRepository,
	reps repository.RepresentationRepository,
	guard *transition.Guard,
	notifier notify.Dispatcher,
	m *metrics.Metrics,
	logger *zap.Logger,
) RepresentationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &representationService{cases: cases, reps: reps, guard: guard, notifier: notifier, metrics: m, logger: logger}
}

func (s *representationService) UpdateStatus(ctx context.Context, id int64, change model.StatusChange) (*StatusUpdateResult, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	log := logger.For(ctx, s.logger)

	rec, err := s.reps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrRepresentationNotFound, id)
		}
		return nil, err
	}

	dec, err := s.guard.Evaluate(rec.Representation, change)
	if err != nil {
		s.metrics.Transition(metrics.ResultRejected)
		log.Warn("status change rejected",
			zap.Int64("representation_id", id),
			zap.String("from", string(rec.Status)),
			zap.String("to", string(change.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	res := &StatusUpdateResult{Representation: rec.Representation, Changed: dec.Changed}
	if !dec.Changed && change.RedactedRepresentation == nil {
		s.metrics.Transition(metrics.ResultOK)
		return res, nil
	}

	updated, err := s.reps.UpdateStatus(ctx, id, rec.Status, dec.Effective, change.RedactedRepresentation)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			s.metrics.Transition(metrics.ResultRejected)
			log.Warn("status change lost a concurrent update",
				zap.Int64("representation_id", id),
				zap.String("from", string(rec.Status)),
			)
			return nil, fmt.Errorf("%w: %d", ErrStatusConflict, id)
		case errors.Is(err, repository.ErrNotFound):
			s.metrics.Transition(metrics.ResultError)
			return nil, fmt.Errorf("%w: %d", ErrRepresentationNotFound, id)
		}
		s.metrics.Transition(metrics.ResultError)
		return nil, fmt.Errorf("update representation %d: %w", id, err)
	}
	s.metrics.Transition(metrics.ResultOK)
	updated.CaseReference = rec.CaseReference
	res.Representation = *updated

	if !dec.Changed {
		return res, nil
	}

	n := notify.Notification{
		RepresentationID: id,
		CaseReference:    rec.CaseReference,
		Type:             updated.Type,
		Status:           updated.Status,
		Email:            rec.RecipientEmail,
		LPACode:          rec.LPACode,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.Notification(metrics.ResultError)
		log.Error("status notification failed", zap.Int64("representation_id", id), zap.Error(err))
		return nil, fmt.Errorf("notify representation %d: %w", id, err)
	}
	s.metrics.Notification(metrics.ResultOK)
	res.Notified = true

	log.Info("representation status changed",
		zap.Int64("representation_id", id),
		zap.String("from", string(rec.Status)),
		zap.String("to", string(updated.Status)),
	)
	return res, nil
}

func (s *representationService) ListByCase(ctx context.Context, reference string, limit, offset int) (*RepresentationListResult, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	c, err := s.cases.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, reference)
		}
		return nil, err
	}

	page, err := s.reps.ListByCase(ctx, c.ID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		page.Items[i].CaseReference = c.Reference
	}
	return &RepresentationListResult{Items: page.Items, Total: page.Total, Limit: limit, Offset: offset}, nil
}
