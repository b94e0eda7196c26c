package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appealsapi/internal/model"
)

func rep(t model.RepresentationType, s model.RepresentationStatus) model.Representation {
	return model.Representation{ID: 1, Type: t, Status: s}
}

func TestGuard_Evaluate_PublishedIsFrozen(t *testing.T) {
	g := NewGuard(DefaultTable())

	for _, req := range []model.RepresentationStatus{
		model.StatusIncomplete, model.StatusValid, model.StatusInvalid,
		model.StatusAwaitingReview, model.StatusPublished, "", "nonsense",
	} {
		d, err := g.Evaluate(rep(model.RepresentationLPAStatement, model.StatusPublished), model.StatusChange{Status: req})
		require.NoError(t, err, req)
		assert.True(t, d.Allowed)
		assert.Equal(t, model.StatusPublished, d.Effective)
		assert.False(t, d.Changed)
	}
}

func TestGuard_Evaluate(t *testing.T) {
	g := NewGuard(DefaultTable())

	tests := []struct {
		name      string
		rep       model.Representation
		requested model.RepresentationStatus
		effective model.RepresentationStatus
		changed   bool
		wantErr   bool
	}{
		{"comment to valid", rep(model.RepresentationComment, model.StatusAwaitingReview), model.StatusValid, model.StatusValid, true, false},
		{"comment to invalid", rep(model.RepresentationComment, model.StatusAwaitingReview), model.StatusInvalid, model.StatusInvalid, true, false},
		{"statement to incomplete", rep(model.RepresentationAppellantStatement, model.StatusAwaitingReview), model.StatusIncomplete, model.StatusIncomplete, true, false},
		{"rule 6 proof to incomplete", rep(model.RepresentationRule6PartyProofsEvidence, model.StatusValid), model.StatusIncomplete, model.StatusIncomplete, true, false},
		{"same status is not a change", rep(model.RepresentationComment, model.StatusValid), model.StatusValid, model.StatusValid, false, false},
		{"empty request keeps status", rep(model.RepresentationComment, model.StatusInvalid), "", model.StatusInvalid, false, false},
		{"comment cannot be incomplete", rep(model.RepresentationComment, model.StatusAwaitingReview), model.StatusIncomplete, model.StatusAwaitingReview, false, true},
		{"final comment cannot be incomplete", rep(model.RepresentationLPAFinalComment, model.StatusValid), model.StatusIncomplete, model.StatusValid, false, true},
		{"generic update cannot publish", rep(model.RepresentationLPAStatement, model.StatusValid), model.StatusPublished, model.StatusValid, false, true},
		{"unknown status", rep(model.RepresentationComment, model.StatusValid), "withdrawn", model.StatusValid, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := g.Evaluate(tt.rep, model.StatusChange{Status: tt.requested})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrIllegalTransition)
				var te *Error
				require.ErrorAs(t, err, &te)
				assert.Equal(t, tt.rep.Type, te.Type)
				assert.False(t, d.Allowed)
			} else {
				require.NoError(t, err)
				assert.True(t, d.Allowed)
			}
			assert.Equal(t, tt.effective, d.Effective)
			assert.Equal(t, tt.changed, d.Changed)
		})
	}
}

func TestGuard_InitialStatus(t *testing.T) {
	g := NewGuard(DefaultTable())

	tests := []struct {
		t          model.RepresentationType
		caseStatus string
		want       model.RepresentationStatus
	}{
		{model.RepresentationComment, "lpa_questionnaire", model.StatusAwaitingReview},
		{model.RepresentationComment, "statements", model.StatusPublished},
		{model.RepresentationComment, "evidence", model.StatusPublished},
		{model.RepresentationLPAStatement, "validation", model.StatusAwaitingReview},
		{model.RepresentationLPAStatement, "final_comments", model.StatusPublished},
		{model.RepresentationAppellantFinalComment, "statements", model.StatusAwaitingReview},
		{model.RepresentationAppellantFinalComment, "final_comments", model.StatusPublished},
		{model.RepresentationLPAProofsEvidence, "final_comments", model.StatusAwaitingReview},
		{model.RepresentationRule6PartyProofsEvidence, "complete", model.StatusPublished},
		{model.RepresentationComment, "withdrawn", model.StatusAwaitingReview},
		{model.RepresentationComment, "", model.StatusAwaitingReview},
		{"unknown_type", "complete", model.StatusAwaitingReview},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.InitialStatus(tt.t, tt.caseStatus), "%s at %s", tt.t, tt.caseStatus)
	}
}

func TestGuard_InjectedTable(t *testing.T) {
	table := Table{
		IncompleteTypes: map[model.RepresentationType]bool{model.RepresentationComment: true},
		PublishStage:    map[model.RepresentationType]string{model.RepresentationComment: "open"},
		Lifecycle:       []string{"draft", "open", "shut"},
	}
	g := NewGuard(table)

	d, err := g.Evaluate(rep(model.RepresentationComment, model.StatusValid), model.StatusChange{Status: model.StatusIncomplete})
	require.NoError(t, err)
	assert.Equal(t, model.StatusIncomplete, d.Effective)

	_, err = g.Evaluate(rep(model.RepresentationLPAStatement, model.StatusValid), model.StatusChange{Status: model.StatusIncomplete})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	assert.Equal(t, model.StatusAwaitingReview, g.InitialStatus(model.RepresentationComment, "draft"))
	assert.Equal(t, model.StatusPublished, g.InitialStatus(model.RepresentationComment, "shut"))
	assert.Equal(t, model.StatusAwaitingReview, g.InitialStatus(model.RepresentationComment, "statements"))
}
