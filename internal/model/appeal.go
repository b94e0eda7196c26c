package model

import "time"

// CaseStatusInitial is the lifecycle state of a newly ingested case.
const CaseStatusInitial = "assign_case_officer"

// Address is a postal address.
type Address struct {
	Line1    string `json:"addressLine1"`
	Line2    string `json:"addressLine2,omitempty"`
	Town     string `json:"addressTown"`
	County   string `json:"addressCounty,omitempty"`
	Postcode string `json:"postcode"`
}

// Appeal holds the case-level fields populated from an appellant submission.
type Appeal struct {
	ID                   int64      `json:"id"`
	Reference            string     `json:"reference"`
	Status               string     `json:"status"`
	AppealType           string     `json:"appealType"`
	LPACode              string     `json:"lpaCode"`
	ApplicationReference string     `json:"applicationReference"`
	ApplicationDate      *time.Time `json:"applicationDate,omitempty"`
	ApplicationDecision  string     `json:"applicationDecision,omitempty"`
	SubmittedAt          time.Time  `json:"submittedAt"`
	SiteAddress          Address    `json:"siteAddress"`
	SiteAreaSquareMetres float64    `json:"siteAreaSquareMetres,omitempty"`
	IsGreenBelt          *bool      `json:"isGreenBelt,omitempty"`
	SiteAccessDetails    string     `json:"siteAccessDetails,omitempty"`
	SiteSafetyDetails    string     `json:"siteSafetyDetails,omitempty"`
}

// CaseSummary is the slice of a stored case the pipeline needs to attach to it.
type CaseSummary struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	LPACode   string `json:"lpaCode"`
}

// ListedBuilding is a listed building entry attached to a questionnaire.
type ListedBuilding struct {
	EntryNumber           string `json:"listEntry"`
	AffectsListedBuilding bool   `json:"affectsListedBuilding"`
}

// Questionnaire holds the authority's response to an appeal.
type Questionnaire struct {
	CaseReference       string           `json:"caseReference"`
	SubmittedAt         time.Time        `json:"submittedAt"`
	IsCorrectAppealType *bool            `json:"isCorrectAppealType,omitempty"`
	IsConservationArea  *bool            `json:"isConservationArea,omitempty"`
	IsGreenBelt         *bool            `json:"isGreenBelt,omitempty"`
	SiteAccessDetails   string           `json:"siteAccessDetails,omitempty"`
	SiteSafetyDetails   string           `json:"siteSafetyDetails,omitempty"`
	LPAStatement        string           `json:"lpaStatement,omitempty"`
	NewConditionDetails string           `json:"newConditionDetails,omitempty"`
	ListedBuildings     []ListedBuilding `json:"listedBuildings"`
	NotificationMethods []string         `json:"notificationMethods"`
}

// CaseAggregate is a ready-to-persist appellant case submission.
type CaseAggregate struct {
	Appeal            Appeal            `json:"appeal"`
	Appellant         *ServiceUser      `json:"appellant,omitempty"`
	Agent             *ServiceUser      `json:"agent,omitempty"`
	Documents         []DocumentVersion `json:"documents"`
	RelatedReferences []string          `json:"relatedReferences"`
	RenamedDocuments  int               `json:"-"`
}

// QuestionnaireAggregate is a ready-to-persist authority questionnaire.
type QuestionnaireAggregate struct {
	Questionnaire     Questionnaire     `json:"questionnaire"`
	Documents         []DocumentVersion `json:"documents"`
	RelatedReferences []string          `json:"relatedReferences"`
	RenamedDocuments  int               `json:"-"`
}

// RepresentationAggregate is a ready-to-persist representation with its attachments.
type RepresentationAggregate struct {
	Representation   Representation    `json:"representation"`
	Linkage          PartyLinkage      `json:"-"`
	Attachments      []DocumentVersion `json:"attachments"`
	RenamedDocuments int               `json:"-"`
}
