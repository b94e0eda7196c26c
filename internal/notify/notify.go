// Package notify dispatches representation status changes to the parties
// that made them. The message content and the mail transport live
// downstream; this package only hands the event over.
package notify

import (
	"context"
	"errors"
	"fmt"

	"appealsapi/internal/model"
)

// ErrMissingRecipient is returned when a notification has nobody to go to.
var ErrMissingRecipient = errors.New("notification has no recipient")

// Notification describes an approved status change.
type Notification struct {
	RepresentationID int64                      `json:"representationId"`
	CaseReference    string                     `json:"caseReference"`
	Type             model.RepresentationType   `json:"representationType"`
	Status           model.RepresentationStatus `json:"status"`
	Email            string                     `json:"email,omitempty"`
	LPACode          string                     `json:"lpaCode,omitempty"`
}

// Recipient is the email of the represented party, or the authority code for
// representations made by the authority.
func (n Notification) Recipient() string {
	if n.Email != "" {
		return n.Email
	}
	return n.LPACode
}

func (n Notification) validate() error {
	if n.Recipient() == "" {
		return fmt.Errorf("representation %d: %w", n.RepresentationID, ErrMissingRecipient)
	}
	return nil
}

// Dispatcher sends status change notifications.
type Dispatcher interface {
	Notify(ctx context.Context, n Notification) error
	Close() error
}

// noop is used when no transport is configured. It still rejects
// notifications without a recipient so callers see the same failures.
type noop struct{}

// NewNoop returns a Dispatcher that validates and drops every notification.
func NewNoop() Dispatcher { return noop{} }

func (noop) Notify(_ context.Context, n Notification) error { return n.validate() }

func (noop) Close() error { return nil }
