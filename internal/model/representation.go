package model

import "time"

// RepresentationType is the canonical classification of a representation.
type RepresentationType string

const (
	RepresentationComment                  RepresentationType = "comment"
	RepresentationAppellantStatement       RepresentationType = "appellant_statement"
	RepresentationLPAStatement             RepresentationType = "lpa_statement"
	RepresentationRule6PartyStatement      RepresentationType = "rule_6_party_statement"
	RepresentationAppellantFinalComment    RepresentationType = "appellant_final_comment"
	RepresentationLPAFinalComment          RepresentationType = "lpa_final_comment"
	RepresentationAppellantProofsEvidence  RepresentationType = "appellant_proofs_evidence"
	RepresentationLPAProofsEvidence        RepresentationType = "lpa_proofs_evidence"
	RepresentationRule6PartyProofsEvidence RepresentationType = "rule_6_party_proofs_evidence"
)

// RepresentationStatus is the review state of a representation.
type RepresentationStatus string

const (
	StatusAwaitingReview RepresentationStatus = "awaiting_review"
	StatusValid          RepresentationStatus = "valid"
	StatusIncomplete     RepresentationStatus = "incomplete"
	StatusInvalid        RepresentationStatus = "invalid"
	StatusPublished      RepresentationStatus = "published"
)

// Known reports whether s is one of the fixed status values.
func (s RepresentationStatus) Known() bool {
	switch s {
	case StatusAwaitingReview, StatusValid, StatusIncomplete, StatusInvalid, StatusPublished:
		return true
	}
	return false
}

// RepresentationSource records which party submitted a representation.
type RepresentationSource string

const (
	SourceCitizen RepresentationSource = "citizen"
	SourceLPA     RepresentationSource = "lpa"
)

// Representation is a submitted comment, statement or proof of evidence.
type Representation struct {
	ID                     int64                `json:"id"`
	CaseID                 int64                `json:"caseId"`
	CaseReference          string               `json:"caseReference"`
	Type                   RepresentationType   `json:"representationType"`
	Status                 RepresentationStatus `json:"status"`
	OriginalRepresentation string               `json:"originalRepresentation"`
	RedactedRepresentation string               `json:"redactedRepresentation,omitempty"`
	Source                 RepresentationSource `json:"source"`
	RepresentedID          *int64               `json:"representedId,omitempty"`
	LPACode                string               `json:"lpaCode,omitempty"`
	DateReceived           time.Time            `json:"dateReceived"`
	DateCreated            time.Time            `json:"dateCreated"`
}

// RepresentationAttachment links a representation to a document version.
type RepresentationAttachment struct {
	DocumentGUID     string `json:"documentGuid"`
	Version          int    `json:"version"`
	RepresentationID int64  `json:"representationId"`
}

// RepresentationRecord is a stored representation together with the
// details needed to review and notify on it.
type RepresentationRecord struct {
	Representation
	CaseStatus     string `json:"caseStatus"`
	RecipientEmail string `json:"-"`
}

// StatusChange is a requested update against an existing representation.
type StatusChange struct {
	Status                 RepresentationStatus
	RedactedRepresentation *string
}
