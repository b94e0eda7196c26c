// Package schema checks inbound submission payloads against their JSON schemas
// before they are decoded.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Submission kinds with a registered schema.
const (
	KindAppellantCase    = "appellant_case"
	KindLPAQuestionnaire = "lpa_questionnaire"
	KindRepresentation   = "representation"
)

// ErrSchemaReject matches any *ValidationError.
var ErrSchemaReject = errors.New("payload rejected by schema")

// ValidationError lists why a payload did not match its schema.
type ValidationError struct {
	Kind     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s payload invalid: %s", e.Kind, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrSchemaReject
}

const documentDef = `{
  "type": "object",
  "properties": {
    "documentId": {"type": ["string", "null"]},
    "filename": {"type": ["string", "null"]},
    "originalFilename": {"type": ["string", "null"]},
    "size": {"type": ["integer", "null"], "minimum": 0},
    "mime": {"type": ["string", "null"]},
    "documentURI": {"type": ["string", "null"]},
    "dateCreated": {"type": ["string", "null"], "format": "date-time"},
    "documentType": {"type": ["string", "null"]},
    "stage": {"type": ["string", "null"]},
    "description": {"type": ["string", "null"]}
  },
  "anyOf": [
    {"required": ["originalFilename"], "properties": {"originalFilename": {"type": "string", "minLength": 1}}},
    {"required": ["filename"], "properties": {"filename": {"type": "string", "minLength": 1}}}
  ]
}`

const userDef = `{
  "type": "object",
  "properties": {
    "serviceUserType": {"type": ["string", "null"]},
    "firstName": {"type": ["string", "null"]},
    "lastName": {"type": ["string", "null"]},
    "emailAddress": {"type": ["string", "null"]}
  }
}`

var schemaSources = map[string]string{
	KindAppellantCase: `{
  "type": "object",
  "required": ["casedata"],
  "definitions": {"document": ` + documentDef + `, "user": ` + userDef + `},
  "properties": {
    "casedata": {
      "type": "object",
      "required": ["caseReference"],
      "properties": {
        "caseReference": {"type": "string", "minLength": 1},
        "caseSubmittedDate": {"type": ["string", "null"], "format": "date-time"},
        "applicationDate": {"type": ["string", "null"], "format": "date-time"},
        "siteAreaSquareMetres": {"type": ["number", "null"], "minimum": 0},
        "siteAccessDetails": {"type": ["array", "null"], "items": {"type": "string"}},
        "siteSafetyDetails": {"type": ["array", "null"], "items": {"type": "string"}},
        "nearbyCaseReferences": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "documents": {"type": ["array", "null"], "items": {"$ref": "#/definitions/document"}},
    "users": {"type": ["array", "null"], "items": {"$ref": "#/definitions/user"}}
  }
}`,
	KindLPAQuestionnaire: `{
  "type": "object",
  "required": ["casedata"],
  "definitions": {"document": ` + documentDef + `},
  "properties": {
    "casedata": {
      "type": "object",
      "required": ["caseReference"],
      "properties": {
        "caseReference": {"type": "string", "minLength": 1},
        "lpaQuestionnaireSubmittedDate": {"type": ["string", "null"], "format": "date-time"},
        "affectedListedBuildingNumbers": {"type": ["array", "null"], "items": {"type": "string"}},
        "changedListedBuildingNumbers": {"type": ["array", "null"], "items": {"type": "string"}},
        "notificationMethod": {"type": ["array", "null"], "items": {"type": "string"}},
        "nearbyCaseReferences": {"type": ["array", "null"], "items": {"type": "string"}}
      }
    },
    "documents": {"type": ["array", "null"], "items": {"$ref": "#/definitions/document"}}
  }
}`,
	KindRepresentation: `{
  "type": "object",
  "required": ["caseReference"],
  "definitions": {"document": ` + documentDef + `, "user": ` + userDef + `},
  "properties": {
    "caseReference": {"type": "string", "minLength": 1},
    "representationType": {"type": ["string", "null"]},
    "representation": {"type": ["string", "null"]},
    "representationSubmittedDate": {"type": ["string", "null"], "format": "date-time"},
    "lpaCode": {"type": ["string", "null"]},
    "serviceUserId": {"type": ["string", "null"]},
    "newUser": {"oneOf": [{"type": "null"}, {"$ref": "#/definitions/user"}]},
    "documents": {"type": ["array", "null"], "items": {"$ref": "#/definitions/document"}}
  }
}`,
}

// Validator holds the compiled submission schemas.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles every registered schema.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(schemaSources))}
	for kind, src := range schemaSources {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			return nil, fmt.Errorf("invalid schema for %s: %w", kind, err)
		}
		v.schemas[kind] = s
	}
	return v, nil
}

// Validate checks payload against the schema for kind.
func (v *Validator) Validate(kind string, payload []byte) error {
	s, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for submission kind %q", kind)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		// malformed JSON
		return &ValidationError{Kind: kind, Problems: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Kind: kind, Problems: problems}
}
