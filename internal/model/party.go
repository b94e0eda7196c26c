package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPartyLinkage is returned when a representation does not name exactly one party.
var ErrInvalidPartyLinkage = errors.New("exactly one of serviceUserId, newUser or lpaCode must be supplied")

// Service user roles.
const (
	ServiceUserAppellant       = "Appellant"
	ServiceUserAgent           = "Agent"
	ServiceUserInterestedParty = "InterestedParty"
)

// ServiceUser is a person or organisation taking part in a case.
type ServiceUser struct {
	ID           int64    `json:"id,omitempty"`
	Type         string   `json:"serviceUserType"`
	Salutation   string   `json:"salutation,omitempty"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Organisation string   `json:"organisation,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

// PartyLinkage says how a representation is attached to the party that made it.
// It is one of LinkByServiceUser, LinkByNewUser or LinkByAuthority.
type PartyLinkage interface {
	partyLinkage()
}

// LinkByServiceUser connects to an existing service user.
type LinkByServiceUser struct {
	ServiceUserID int64
}

// LinkByNewUser creates a new service user for the representation.
type LinkByNewUser struct {
	User ServiceUser
}

// LinkByAuthority connects to the local planning authority record.
type LinkByAuthority struct {
	LPACode string
}

func (LinkByServiceUser) partyLinkage() {}
func (LinkByNewUser) partyLinkage()     {}
func (LinkByAuthority) partyLinkage()   {}

// NewPartyLinkage builds the linkage from the identifying fields of a submission.
// Zero or several populated fields yield ErrInvalidPartyLinkage.
func NewPartyLinkage(serviceUserID string, newUser *ServiceUser, lpaCode string) (PartyLinkage, error) {
	serviceUserID = strings.TrimSpace(serviceUserID)
	lpaCode = strings.TrimSpace(lpaCode)

	set := 0
	if serviceUserID != "" {
		set++
	}
	if newUser != nil {
		set++
	}
	if lpaCode != "" {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartyLinkage, set)
	}

	switch {
	case serviceUserID != "":
		id, err := strconv.ParseInt(serviceUserID, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: serviceUserId %q is not a valid id", ErrInvalidPartyLinkage, serviceUserID)
		}
		return LinkByServiceUser{ServiceUserID: id}, nil
	case newUser != nil:
		return LinkByNewUser{User: *newUser}, nil
	default:
		return LinkByAuthority{LPACode: lpaCode}, nil
	}
}
