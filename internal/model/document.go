package model

import "time"

// Stages a document or representation can belong to.
const (
	StageAppellantCase    = "appellant_case"
	StageLPAQuestionnaire = "lpa_questionnaire"
	StageStatements       = "statements"
	StageFinalComments    = "final_comments"
	StageEvidence         = "evidence"
	StageRepresentation   = "representation"
	StageInternal         = "internal"
	StageCosts            = "costs"
)

// Document types that the pipeline assigns itself rather than reading from the sender.
const (
	DocumentTypeRepresentationAttachments = "representationAttachments"
	DocumentTypeRule6Statement            = "rule_6_statement"
	DocumentTypeRule6ProofsEvidence       = "rule_6_proofs_evidence"
	DocumentTypeUncategorised             = "uncategorised"
)

// FolderUncategorised is the fallback folder every case carries.
const FolderUncategorised = StageInternal + "/" + DocumentTypeUncategorised

// CaseFolderPaths is the fixed folder set created alongside every case.
var CaseFolderPaths = []string{
	StageAppellantCase + "/application_form",
	StageAppellantCase + "/appellant_statement",
	StageAppellantCase + "/plans_drawings",
	StageAppellantCase + "/design_access_statement",
	StageAppellantCase + "/decision_letter",
	StageAppellantCase + "/ownership_certificate",
	StageAppellantCase + "/new_plans_drawings",
	StageLPAQuestionnaire + "/planning_officer_report",
	StageLPAQuestionnaire + "/plans_drawings",
	StageLPAQuestionnaire + "/conservation_map",
	StageLPAQuestionnaire + "/who_notified",
	StageLPAQuestionnaire + "/consultation_responses",
	StageLPAQuestionnaire + "/other_party_representations",
	StageStatements + "/" + DocumentTypeRule6Statement,
	StageRepresentation + "/" + DocumentTypeRepresentationAttachments,
	StageEvidence + "/" + DocumentTypeRule6ProofsEvidence,
	StageCosts + "/appellant_costs_application",
	StageCosts + "/lpa_costs_application",
	StageInternal + "/cross_team_correspondence",
	FolderUncategorised,
}

// RawSubmissionDocument is a document as received from the upstream system.
// Nullable fields arrive as JSON null and decode to the zero value.
type RawSubmissionDocument struct {
	DocumentID       string     `json:"documentId"`
	Filename         string     `json:"filename"`
	OriginalFilename string     `json:"originalFilename"`
	Size             int64      `json:"size"`
	Mime             string     `json:"mime"`
	DocumentURI      string     `json:"documentURI"`
	DateCreated      *time.Time `json:"dateCreated"`
	DocumentType     string     `json:"documentType"`
	Stage            string     `json:"stage"`
	Description      string     `json:"description"`
}

// DocumentVersion is the persistable unit produced at ingestion.
// Version is always 1 here; later versions belong to document history.
type DocumentVersion struct {
	DocumentGUID         string    `json:"documentGuid"`
	Version              int       `json:"version"`
	FolderID             int64     `json:"folderId"`
	FileName             string    `json:"fileName"`
	OriginalFilename     string    `json:"originalFilename"`
	SourceDocumentID     string    `json:"sourceDocumentId"`
	DocumentURI          string    `json:"documentURI"`
	Size                 int64     `json:"size"`
	Mime                 string    `json:"mime"`
	BlobStorageContainer string    `json:"blobStorageContainer"`
	BlobStoragePath      string    `json:"blobStoragePath"`
	Stage                string    `json:"stage"`
	DocumentType         string    `json:"documentType"`
	DateCreated          time.Time `json:"dateCreated"`
	LastModified         time.Time `json:"lastModified"`
	Description          string    `json:"description"`
}

// Folder is a case-scoped bucket keyed by a "stage/documentType" path.
type Folder struct {
	ID     int64  `json:"id"`
	CaseID int64  `json:"caseId"`
	Path   string `json:"path"`
}
