package service

import "errors"

var (
	ErrIDRequired             = errors.New("id is required")
	ErrInvalidBody            = errors.New("invalid submission body")
	ErrCaseNotFound           = errors.New("case not found")
	ErrCaseExists             = errors.New("case already exists")
	ErrQuestionnaireExists    = errors.New("questionnaire already received")
	ErrStatusConflict         = errors.New("representation was changed by another request")
	ErrRepresentationNotFound = errors.New("representation not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrBlobMissing            = errors.New("document content not found in blob store")
)
