package ingest

import (
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"appealsapi/internal/model"
)

// VersionBuilder builds the first version of a document from a raw submission document.
// Clock and id sources are fields so callers can pin them.
type VersionBuilder struct {
	Container string
	Now       func() time.Time
	NewGUID   func() string
	NewToken  func() string

	// PresetTypes are document types a caller may set on a representation
	// attachment before building; any other type is replaced by the
	// representation attachments bucket.
	PresetTypes map[string]bool
}

// NewVersionBuilder returns a builder filing blobs under container.
func NewVersionBuilder(container string) *VersionBuilder {
	return &VersionBuilder{
		Container: container,
		Now:       func() time.Time { return time.Now().UTC() },
		NewGUID:   uuid.NewString,
		NewToken:  uuid.NewString,
		PresetTypes: map[string]bool{
			model.DocumentTypeRule6Statement:      true,
			model.DocumentTypeRule6ProofsEvidence: true,
		},
	}
}

// Build produces version 1 of doc in the given stage context.
func (b *VersionBuilder) Build(doc model.RawSubmissionDocument, stage string) model.DocumentVersion {
	now := b.Now()
	guid := b.NewGUID()

	fileName := doc.OriginalFilename
	documentType := doc.DocumentType
	if stage == model.StageRepresentation {
		fileName = b.NewToken() + "_" + doc.OriginalFilename
		if !b.PresetTypes[documentType] {
			documentType = model.DocumentTypeRepresentationAttachments
		}
	}

	docStage := doc.Stage
	if docStage == "" {
		docStage = stage
	}
	if docStage == "" {
		docStage = model.StageInternal
	}

	description := doc.Description
	if description == "" {
		description = fmt.Sprintf("Document %s (source id %s) received from integration", doc.OriginalFilename, doc.DocumentID)
	}

	created := now
	if doc.DateCreated != nil && !doc.DateCreated.IsZero() {
		created = doc.DateCreated.UTC()
	}

	return model.DocumentVersion{
		DocumentGUID:         guid,
		Version:              1,
		FileName:             fileName,
		OriginalFilename:     doc.OriginalFilename,
		SourceDocumentID:     doc.DocumentID,
		DocumentURI:          doc.DocumentURI,
		Size:                 doc.Size,
		Mime:                 doc.Mime,
		BlobStorageContainer: b.Container,
		BlobStoragePath:      path.Join(guid, "v1", fileName),
		Stage:                docStage,
		DocumentType:         documentType,
		DateCreated:          created,
		LastModified:         now,
		Description:          description,
	}
}
