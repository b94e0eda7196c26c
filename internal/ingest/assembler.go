package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"appealsapi/internal/model"
)

// ErrInvalidDocument is returned for a document that carries no usable filename.
var ErrInvalidDocument = errors.New("document has no filename")

// RepresentationContext holds facts about the submitting party that are
// looked up from the case before assembly.
type RepresentationContext struct {
	IsRule6Party bool
}

// Assembler turns inbound submissions into persistence-ready aggregates.
type Assembler struct {
	builder   *VersionBuilder
	maxProbes int
}

// NewAssembler returns an Assembler building document versions with builder.
func NewAssembler(builder *VersionBuilder) *Assembler {
	return &Assembler{builder: builder, maxProbes: MaxCollisionProbes}
}

// AssembleCase builds the aggregate for a new appeal.
func (a *Assembler) AssembleCase(sub model.CaseSubmission) (*model.CaseAggregate, error) {
	cd := sub.CaseData

	docs, renamed, err := a.buildDocuments(sub.Documents, model.StageAppellantCase)
	if err != nil {
		return nil, err
	}

	appeal := model.Appeal{
		Reference:            strings.TrimSpace(cd.CaseReference),
		Status:               model.CaseStatusInitial,
		AppealType:           cd.CaseType,
		LPACode:              cd.LPACode,
		ApplicationReference: cd.ApplicationReference,
		ApplicationDate:      cd.ApplicationDate,
		ApplicationDecision:  cd.ApplicationDecision,
		SubmittedAt:          a.timeOrNow(cd.CaseSubmittedDate),
		SiteAddress: model.Address{
			Line1:    cd.SiteAddressLine1,
			Line2:    cd.SiteAddressLine2,
			Town:     cd.SiteAddressTown,
			County:   cd.SiteAddressCounty,
			Postcode: cd.SiteAddressPostcode,
		},
		SiteAreaSquareMetres: cd.SiteAreaSquareMetres,
		IsGreenBelt:          cd.IsGreenBelt,
		SiteAccessDetails:    first(cd.SiteAccessDetails),
		SiteSafetyDetails:    first(cd.SiteSafetyDetails),
	}

	return &model.CaseAggregate{
		Appeal:            appeal,
		Appellant:         findUser(sub.Users, model.ServiceUserAppellant),
		Agent:             findUser(sub.Users, model.ServiceUserAgent),
		Documents:         docs,
		RelatedReferences: references(cd.NearbyCaseReferences),
		RenamedDocuments:  renamed,
	}, nil
}

// AssembleQuestionnaire builds the aggregate for an authority questionnaire.
func (a *Assembler) AssembleQuestionnaire(sub model.QuestionnaireSubmission) (*model.QuestionnaireAggregate, error) {
	cd := sub.CaseData

	docs, renamed, err := a.buildDocuments(sub.Documents, model.StageLPAQuestionnaire)
	if err != nil {
		return nil, err
	}

	listed := make([]model.ListedBuilding, 0, len(cd.AffectedListedBuildingNumbers)+len(cd.ChangedListedBuildingNumbers))
	for _, n := range cd.AffectedListedBuildingNumbers {
		if n = strings.TrimSpace(n); n != "" {
			listed = append(listed, model.ListedBuilding{EntryNumber: n, AffectsListedBuilding: true})
		}
	}
	for _, n := range cd.ChangedListedBuildingNumbers {
		if n = strings.TrimSpace(n); n != "" {
			listed = append(listed, model.ListedBuilding{EntryNumber: n, AffectsListedBuilding: false})
		}
	}

	methods := make([]string, 0, len(cd.NotificationMethod))
	for _, m := range cd.NotificationMethod {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, m)
		}
	}

	q := model.Questionnaire{
		CaseReference:       strings.TrimSpace(cd.CaseReference),
		SubmittedAt:         a.timeOrNow(cd.LPAQuestionnaireSubmittedDate),
		IsCorrectAppealType: cd.IsCorrectAppealType,
		IsConservationArea:  cd.IsConservationArea,
		IsGreenBelt:         cd.IsGreenBelt,
		SiteAccessDetails:   first(cd.SiteAccessDetails),
		SiteSafetyDetails:   first(cd.SiteSafetyDetails),
		LPAStatement:        cd.LPAStatement,
		NewConditionDetails: cd.NewConditionDetails,
		ListedBuildings:     listed,
		NotificationMethods: methods,
	}

	return &model.QuestionnaireAggregate{
		Questionnaire:     q,
		Documents:         docs,
		RelatedReferences: references(cd.NearbyCaseReferences),
		RenamedDocuments:  renamed,
	}, nil
}

// AssembleRepresentation builds the aggregate for a comment, statement or proof.
// The status is left as awaiting_review; auto-publication is decided by the caller.
func (a *Assembler) AssembleRepresentation(sub model.RepresentationSubmission, rc RepresentationContext) (*model.RepresentationAggregate, error) {
	lpaCode := deref(sub.LPACode)
	repType := ResolveRepresentationType(sub.RepresentationType, strings.TrimSpace(lpaCode) != "", rc.IsRule6Party)

	var newUser *model.ServiceUser
	if sub.NewUser != nil {
		u := toServiceUser(*sub.NewUser)
		// Anyone registering through a representation joins the case as an
		// interested party; appellant and rule 6 standing are granted elsewhere.
		u.Type = model.ServiceUserInterestedParty
		newUser = &u
	}
	linkage, err := model.NewPartyLinkage(deref(sub.ServiceUserID), newUser, lpaCode)
	if err != nil {
		return nil, err
	}

	raw := make([]model.RawSubmissionDocument, len(sub.Documents))
	profile, override := AttachmentProfileFor(repType)
	for i, d := range sub.Documents {
		if override {
			d.DocumentType = profile.DocumentType
			d.Stage = profile.Stage
		} else {
			d.DocumentType = model.DocumentTypeRepresentationAttachments
		}
		raw[i] = d
	}

	attachments, renamed, err := a.buildDocuments(raw, model.StageRepresentation)
	if err != nil {
		return nil, err
	}

	rep := model.Representation{
		CaseReference:          strings.TrimSpace(sub.CaseReference),
		Type:                   repType,
		Status:                 model.StatusAwaitingReview,
		OriginalRepresentation: sub.Representation,
		Source:                 model.SourceCitizen,
		DateReceived:           a.timeOrNow(sub.RepresentationSubmittedDate),
	}
	switch l := linkage.(type) {
	case model.LinkByAuthority:
		rep.Source = model.SourceLPA
		rep.LPACode = l.LPACode
	case model.LinkByServiceUser:
		id := l.ServiceUserID
		rep.RepresentedID = &id
	}

	return &model.RepresentationAggregate{
		Representation:   rep,
		Linkage:          linkage,
		Attachments:      attachments,
		RenamedDocuments: renamed,
	}, nil
}

func (a *Assembler) buildDocuments(raw []model.RawSubmissionDocument, stage string) ([]model.DocumentVersion, int, error) {
	prepared := make([]model.RawSubmissionDocument, len(raw))
	for i, d := range raw {
		d.OriginalFilename = strings.TrimSpace(d.OriginalFilename)
		if d.OriginalFilename == "" {
			d.OriginalFilename = strings.TrimSpace(d.Filename)
		}
		if d.OriginalFilename == "" {
			return nil, 0, fmt.Errorf("%w: document %d (id %q)", ErrInvalidDocument, i, d.DocumentID)
		}
		prepared[i] = d
	}

	unique, renamed, err := deduplicate(prepared, a.maxProbes)
	if err != nil {
		return nil, 0, err
	}

	versions := make([]model.DocumentVersion, len(unique))
	for i, d := range unique {
		versions[i] = a.builder.Build(d, stage)
	}
	return versions, renamed, nil
}

func (a *Assembler) timeOrNow(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return t.UTC()
	}
	return a.builder.Now()
}

func findUser(users []model.SubmissionUser, role string) *model.ServiceUser {
	for _, u := range users {
		if strings.EqualFold(strings.TrimSpace(u.ServiceUserType), role) {
			su := toServiceUser(u)
			su.Type = role
			return &su
		}
	}
	return nil
}

func toServiceUser(u model.SubmissionUser) model.ServiceUser {
	su := model.ServiceUser{
		Type:         strings.TrimSpace(u.ServiceUserType),
		Salutation:   u.Salutation,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Organisation: u.Organisation,
		Email:        strings.TrimSpace(u.EmailAddress),
		Phone:        u.TelephoneNumber,
	}
	if u.AddressLine1 != "" || u.PostCode != "" {
		su.Address = &model.Address{
			Line1:    u.AddressLine1,
			Line2:    u.AddressLine2,
			Town:     u.AddressTown,
			County:   u.AddressCounty,
			Postcode: u.PostCode,
		}
	}
	return su
}

func references(refs []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
