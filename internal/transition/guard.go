// Package transition decides which representation status changes are legal and
// whether a new representation is published straight away.
package transition

import (
	"errors"
	"fmt"

	"appealsapi/internal/model"
)

// ErrIllegalTransition matches any *Error returned by the Guard.
var ErrIllegalTransition = errors.New("illegal status transition")

// Error describes a rejected status change.
type Error struct {
	From   model.RepresentationStatus
	To     model.RepresentationStatus
	Type   model.RepresentationType
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot move %s representation from %q to %q: %s", e.Type, e.From, e.To, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrIllegalTransition
}

// Table holds the rules the Guard applies.
type Table struct {
	// IncompleteTypes are the representation types that may be marked incomplete.
	IncompleteTypes map[model.RepresentationType]bool
	// PublishStage maps a representation type to the case lifecycle stage from
	// which new representations of that type are published on arrival.
	PublishStage map[model.RepresentationType]string
	// Lifecycle lists case statuses in the order a case moves through them.
	Lifecycle []string
}

// DefaultTable returns the rules used in production.
func DefaultTable() Table {
	return Table{
		IncompleteTypes: map[model.RepresentationType]bool{
			model.RepresentationAppellantStatement:       true,
			model.RepresentationLPAStatement:             true,
			model.RepresentationRule6PartyStatement:      true,
			model.RepresentationAppellantProofsEvidence:  true,
			model.RepresentationLPAProofsEvidence:        true,
			model.RepresentationRule6PartyProofsEvidence: true,
		},
		PublishStage: map[model.RepresentationType]string{
			model.RepresentationComment:                  "statements",
			model.RepresentationAppellantStatement:       "statements",
			model.RepresentationLPAStatement:             "statements",
			model.RepresentationRule6PartyStatement:      "statements",
			model.RepresentationAppellantFinalComment:    "final_comments",
			model.RepresentationLPAFinalComment:          "final_comments",
			model.RepresentationAppellantProofsEvidence:  "evidence",
			model.RepresentationLPAProofsEvidence:        "evidence",
			model.RepresentationRule6PartyProofsEvidence: "evidence",
		},
		Lifecycle: []string{
			model.CaseStatusInitial,
			"validation",
			"ready_to_start",
			"lpa_questionnaire",
			"statements",
			"final_comments",
			"evidence",
			"event",
			"awaiting_event",
			"issue_determination",
			"complete",
		},
	}
}

// Decision is the outcome of evaluating a status change.
type Decision struct {
	Allowed   bool
	Effective model.RepresentationStatus
	Changed   bool
}

// Guard evaluates status changes against a Table.
type Guard struct {
	table    Table
	position map[string]int
}

// NewGuard returns a Guard enforcing table.
func NewGuard(table Table) *Guard {
	position := make(map[string]int, len(table.Lifecycle))
	for i, s := range table.Lifecycle {
		position[s] = i
	}
	return &Guard{table: table, position: position}
}

// Evaluate checks the requested change against the representation's current
// state. A published representation stays published whatever is requested.
// An empty requested status keeps the current one.
func (g *Guard) Evaluate(rep model.Representation, req model.StatusChange) (Decision, error) {
	current := rep.Status
	if current == model.StatusPublished {
		return Decision{Allowed: true, Effective: model.StatusPublished}, nil
	}

	requested := req.Status
	if requested == "" {
		requested = current
	}

	reject := func(reason string) (Decision, error) {
		return Decision{Effective: current}, &Error{From: current, To: requested, Type: rep.Type, Reason: reason}
	}

	switch {
	case !requested.Known():
		return reject("unknown status")
	case requested == model.StatusPublished:
		return reject("publishing is only done by the stage publish operation")
	case requested == model.StatusIncomplete && !g.table.IncompleteTypes[rep.Type]:
		return reject("only statements and proofs of evidence can be incomplete")
	}

	return Decision{Allowed: true, Effective: requested, Changed: requested != current}, nil
}

// InitialStatus is the status a new representation of type t starts in when its
// case is at caseStatus. Statuses outside the lifecycle never publish.
func (g *Guard) InitialStatus(t model.RepresentationType, caseStatus string) model.RepresentationStatus {
	if g.reached(caseStatus, g.table.PublishStage[t]) {
		return model.StatusPublished
	}
	return model.StatusAwaitingReview
}

func (g *Guard) reached(caseStatus, stage string) bool {
	if stage == "" {
		return false
	}
	at, ok := g.position[caseStatus]
	if !ok {
		return false
	}
	want, ok := g.position[stage]
	if !ok {
		return false
	}
	return at >= want
}
