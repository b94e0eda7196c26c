package ingest

import (
	"strings"

	"appealsapi/internal/model"
)

// Representation kinds as sent by the upstream system.
const (
	KindComment        = "comment"
	KindStatement      = "statement"
	KindFinalComment   = "final_comment"
	KindProofsEvidence = "proofs_evidence"
)

// ResolveRepresentationType maps submission metadata to the canonical type.
// It is total: anything unrecognised is a comment.
func ResolveRepresentationType(kind string, lpaCodePresent, isRule6Party bool) model.RepresentationType {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindStatement:
		switch {
		case isRule6Party:
			return model.RepresentationRule6PartyStatement
		case lpaCodePresent:
			return model.RepresentationLPAStatement
		default:
			return model.RepresentationAppellantStatement
		}
	case KindFinalComment:
		if lpaCodePresent {
			return model.RepresentationLPAFinalComment
		}
		return model.RepresentationAppellantFinalComment
	case KindProofsEvidence:
		switch {
		case isRule6Party:
			return model.RepresentationRule6PartyProofsEvidence
		case lpaCodePresent:
			return model.RepresentationLPAProofsEvidence
		default:
			return model.RepresentationAppellantProofsEvidence
		}
	default:
		return model.RepresentationComment
	}
}

// AttachmentProfile is the document type and stage forced onto the attachments
// of a representation type.
type AttachmentProfile struct {
	DocumentType string
	Stage        string
}

// AttachmentProfileFor reports the attachment override for t, if it has one.
func AttachmentProfileFor(t model.RepresentationType) (AttachmentProfile, bool) {
	switch t {
	case model.RepresentationRule6PartyStatement:
		return AttachmentProfile{DocumentType: model.DocumentTypeRule6Statement, Stage: model.StageStatements}, true
	case model.RepresentationRule6PartyProofsEvidence:
		return AttachmentProfile{DocumentType: model.DocumentTypeRule6ProofsEvidence, Stage: model.StageEvidence}, true
	}
	return AttachmentProfile{}, false
}
