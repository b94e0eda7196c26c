package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid case",
			kind:    KindAppellantCase,
			payload: `{"casedata":{"caseReference":"6000001","caseSubmittedDate":"2026-01-05T12:00:00Z","siteAccessDetails":["gate"]},"documents":[{"documentId":"d1","originalFilename":"plan.pdf","documentType":"plans_drawings","stage":null,"size":10}],"users":[{"serviceUserType":"Appellant","firstName":"Bob"}]}`,
		},
		{
			name:    "case document with only filename",
			kind:    KindAppellantCase,
			payload: `{"casedata":{"caseReference":"6000001"},"documents":[{"filename":"plan.pdf"}]}`,
		},
		{
			name:    "case without casedata",
			kind:    KindAppellantCase,
			payload: `{"documents":[]}`,
			wantErr: true,
		},
		{
			name:    "case with empty reference",
			kind:    KindAppellantCase,
			payload: `{"casedata":{"caseReference":""}}`,
			wantErr: true,
		},
		{
			name:    "document without any filename",
			kind:    KindAppellantCase,
			payload: `{"casedata":{"caseReference":"6000001"},"documents":[{"documentId":"d1"}]}`,
			wantErr: true,
		},
		{
			name:    "negative size",
			kind:    KindAppellantCase,
			payload: `{"casedata":{"caseReference":"6000001"},"documents":[{"originalFilename":"a.pdf","size":-1}]}`,
			wantErr: true,
		},
		{
			name:    "valid questionnaire",
			kind:    KindLPAQuestionnaire,
			payload: `{"casedata":{"caseReference":"6000001","affectedListedBuildingNumbers":["100"]},"documents":[]}`,
		},
		{
			name:    "questionnaire listed buildings must be strings",
			kind:    KindLPAQuestionnaire,
			payload: `{"casedata":{"caseReference":"6000001","affectedListedBuildingNumbers":[100]}}`,
			wantErr: true,
		},
		{
			name:    "valid representation with null lpa code",
			kind:    KindRepresentation,
			payload: `{"caseReference":"6000001","representationType":"comment","lpaCode":null,"newUser":{"firstName":"Cat"},"documents":[]}`,
		},
		{
			name:    "representation without case reference",
			kind:    KindRepresentation,
			payload: `{"representationType":"comment"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			kind:    KindRepresentation,
			payload: `{"caseReference":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.kind, []byte(tt.payload))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaReject)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.kind, ve.Kind)
			assert.NotEmpty(t, ve.Problems)
		})
	}
}

func TestValidator_UnknownKind(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate("nope", []byte(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaReject)
}
