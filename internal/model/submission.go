package model

import "time"

// CaseSubmission is the inbound payload for a new appeal.
type CaseSubmission struct {
	CaseData  CaseData                `json:"casedata"`
	Documents []RawSubmissionDocument `json:"documents"`
	Users     []SubmissionUser        `json:"users"`
}

// CaseData carries the case fields of an appellant submission.
type CaseData struct {
	CaseReference        string     `json:"caseReference"`
	CaseType             string     `json:"caseType"`
	LPACode              string     `json:"lpaCode"`
	ApplicationReference string     `json:"applicationReference"`
	ApplicationDate      *time.Time `json:"applicationDate"`
	ApplicationDecision  string     `json:"applicationDecision"`
	CaseSubmittedDate    *time.Time `json:"caseSubmittedDate"`
	SiteAddressLine1     string     `json:"siteAddressLine1"`
	SiteAddressLine2     string     `json:"siteAddressLine2"`
	SiteAddressTown      string     `json:"siteAddressTown"`
	SiteAddressCounty    string     `json:"siteAddressCounty"`
	SiteAddressPostcode  string     `json:"siteAddressPostcode"`
	SiteAreaSquareMetres float64    `json:"siteAreaSquareMetres"`
	IsGreenBelt          *bool      `json:"isGreenBelt"`
	SiteAccessDetails    []string   `json:"siteAccessDetails"`
	SiteSafetyDetails    []string   `json:"siteSafetyDetails"`
	NearbyCaseReferences []string   `json:"nearbyCaseReferences"`
}

// SubmissionUser is a party as described by the upstream system.
type SubmissionUser struct {
	ServiceUserType string `json:"serviceUserType"`
	Salutation      string `json:"salutation"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Organisation    string `json:"organisation"`
	EmailAddress    string `json:"emailAddress"`
	TelephoneNumber string `json:"telephoneNumber"`
	AddressLine1    string `json:"addressLine1"`
	AddressLine2    string `json:"addressLine2"`
	AddressTown     string `json:"addressTown"`
	AddressCounty   string `json:"addressCounty"`
	PostCode        string `json:"postcode"`
}

// QuestionnaireSubmission is the inbound payload for an authority questionnaire.
type QuestionnaireSubmission struct {
	CaseData  QuestionnaireData       `json:"casedata"`
	Documents []RawSubmissionDocument `json:"documents"`
}

// QuestionnaireData carries the questionnaire answers.
type QuestionnaireData struct {
	CaseReference                 string     `json:"caseReference"`
	LPAQuestionnaireSubmittedDate *time.Time `json:"lpaQuestionnaireSubmittedDate"`
	IsCorrectAppealType           *bool      `json:"isCorrectAppealType"`
	IsConservationArea            *bool      `json:"isConservationArea"`
	IsGreenBelt                   *bool      `json:"isGreenBelt"`
	SiteAccessDetails             []string   `json:"siteAccessDetails"`
	SiteSafetyDetails             []string   `json:"siteSafetyDetails"`
	AffectedListedBuildingNumbers []string   `json:"affectedListedBuildingNumbers"`
	ChangedListedBuildingNumbers  []string   `json:"changedListedBuildingNumbers"`
	NotificationMethod            []string   `json:"notificationMethod"`
	NearbyCaseReferences          []string   `json:"nearbyCaseReferences"`
	LPAStatement                  string     `json:"lpaStatement"`
	NewConditionDetails           string     `json:"newConditionDetails"`
}

// RepresentationSubmission is the inbound payload for a comment, statement or proof.
type RepresentationSubmission struct {
	RepresentationType          string                  `json:"representationType"`
	Representation              string                  `json:"representation"`
	RepresentationSubmittedDate *time.Time              `json:"representationSubmittedDate"`
	CaseReference               string                  `json:"caseReference"`
	LPACode                     *string                 `json:"lpaCode"`
	ServiceUserID               *string                 `json:"serviceUserId"`
	NewUser                     *SubmissionUser         `json:"newUser"`
	Documents                   []RawSubmissionDocument `json:"documents"`
}
