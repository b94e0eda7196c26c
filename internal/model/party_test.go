package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartyLinkage(t *testing.T) {
	user := &ServiceUser{FirstName: "Dee"}

	tests := []struct {
		name    string
		id      string
		user    *ServiceUser
		lpa     string
		want    PartyLinkage
		wantErr bool
	}{
		{name: "service user", id: " 12 ", want: LinkByServiceUser{ServiceUserID: 12}},
		{name: "new user", user: user, want: LinkByNewUser{User: *user}},
		{name: "authority", lpa: "Q9999", want: LinkByAuthority{LPACode: "Q9999"}},
		{name: "nothing", wantErr: true},
		{name: "blank fields count as unset", id: "  ", lpa: " ", wantErr: true},
		{name: "two fields", id: "1", lpa: "Q1", wantErr: true},
		{name: "all fields", id: "1", user: user, lpa: "Q1", wantErr: true},
		{name: "non numeric id", id: "abc", wantErr: true},
		{name: "zero id", id: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPartyLinkage(tt.id, tt.user, tt.lpa)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPartyLinkage)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepresentationStatusKnown(t *testing.T) {
	for _, s := range []RepresentationStatus{StatusAwaitingReview, StatusValid, StatusIncomplete, StatusInvalid, StatusPublished} {
		assert.True(t, s.Known(), s)
	}
	assert.False(t, RepresentationStatus("withdrawn").Known())
	assert.False(t, RepresentationStatus("").Known())
}
