package sirius

import (
	"fmt"
)

type Address struct {
	Line1    string `json:"addressLine1,omitempty"`
	Line2    string `json:"addressLine2,omitempty"`
	Line3    string `json:"addressLine3,omitempty"`
	Town     string `json:"town,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Draft is the application as submitted, held on the Sirius side.
type Draft struct {
	DonorFirstNames         string     `json:"donorFirstNames"`
	DonorLastName           string     `json:"donorLastName"`
	DonorDob                DateString `json:"donorDob"`
	DonorEmail              string     `json:"donorEmail,omitempty"`
	DonorPhone              string     `json:"donorPhone,omitempty"`
	DonorAddress            Address    `json:"donorAddress"`
	CorrespondentFirstNames string     `json:"correspondentFirstNames,omitempty"`
	CorrespondentLastName   string     `json:"correspondentLastName,omitempty"`
	CorrespondentAddress    *Address   `json:"correspondentAddress,omitempty"`
	Source                  string     `json:"source,omitempty"`
}

type LinkedCase struct {
	UID         string     `json:"uId"`
	Subtype     string     `json:"caseSubtype"`
	Status      string     `json:"status"`
	CreatedDate DateString `json:"createdDate"`
}

type SiriusData struct {
	ID                 int          `json:"id"`
	UID                string       `json:"uId"`
	Application        Draft        `json:"application"`
	Subtype            string       `json:"caseSubtype"`
	CreatedDate        DateString   `json:"createdDate"`
	DueDate            DateString   `json:"dueDate"`
	Status             string       `json:"status"`
	ComplaintCount     int          `json:"complaintCount"`
	InvestigationCount int          `json:"investigationCount"`
	TaskCount          int          `json:"taskCount"`
	WarningCount       int          `json:"warningCount"`
	ObjectionCount     int          `json:"objectionCount"`
	LinkedCases        []LinkedCase `json:"linkedDigitalLpas"`
	Donor              Person       `json:"donor"`
}

type LpaStoreAddress struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type IdentityCheck struct {
	Type      string `json:"type"`
	CheckedAt string `json:"checkedAt"`
}

type LpaStorePerson struct {
	Uid           string          `json:"uid"`
	FirstNames    string          `json:"firstNames"`
	LastName      string          `json:"lastName"`
	Address       LpaStoreAddress `json:"address"`
	Email         string          `json:"email,omitempty"`
	IdentityCheck *IdentityCheck  `json:"identityCheck,omitempty"`
}

// FullName joins first and last names.
func (p LpaStorePerson) FullName() string {
	return p.FirstNames + " " + p.LastName
}

type LpaStoreDonor struct {
	LpaStorePerson
	DateOfBirth               string `json:"dateOfBirth"`
	OtherNamesKnownBy         string `json:"otherNamesKnownBy,omitempty"`
	ContactLanguagePreference string `json:"contactLanguagePreference,omitempty"`
}

type LpaStoreAttorney struct {
	LpaStorePerson
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	Status          string `json:"status"`
	AppointmentType string `json:"appointmentType,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	SignedAt        string `json:"signedAt,omitempty"`
	Channel         string `json:"channel,omitempty"`
}

type LpaStoreCertificateProvider struct {
	LpaStorePerson
	Channel  string `json:"channel,omitempty"`
	Phone    string `json:"phone,omitempty"`
	SignedAt string `json:"signedAt,omitempty"`
}

type LpaStoreData struct {
	LpaType                              string                      `json:"lpaType"`
	Channel                              string                      `json:"channel"`
	Status                               string                      `json:"status"`
	RegistrationDate                     string                      `json:"registrationDate,omitempty"`
	SignedAt                             string                      `json:"signedAt,omitempty"`
	Donor                                LpaStoreDonor               `json:"donor"`
	Attorneys                            []LpaStoreAttorney          `json:"attorneys"`
	CertificateProvider                  LpaStoreCertificateProvider `json:"certificateProvider"`
	PeopleToNotify                       []LpaStorePerson            `json:"peopleToNotify"`
	HowAttorneysMakeDecisions            string                      `json:"howAttorneysMakeDecisions,omitempty"`
	HowAttorneysMakeDecisionsDetails     string                      `json:"howAttorneysMakeDecisionsDetails,omitempty"`
	HowReplacementAttorneysMakeDecisions string                      `json:"howReplacementAttorneysMakeDecisions,omitempty"`
	HowReplacementAttorneysStepIn        string                      `json:"howReplacementAttorneysStepIn,omitempty"`
	HowReplacementAttorneysStepInDetails string                      `json:"howReplacementAttorneysStepInDetails,omitempty"`
	WhenTheLpaCanBeUsed                  string                      `json:"whenTheLpaCanBeUsed,omitempty"`
	LifeSustainingTreatmentOption        string                      `json:"lifeSustainingTreatmentOption,omitempty"`
	RestrictionsAndConditions            string                      `json:"restrictionsAndConditions,omitempty"`
}

const (
	ActiveAttorneyStatus       = "active"
	InactiveAttorneyStatus     = "inactive"
	ReplacementAppointmentType = "replacement"
)

// ActiveAttorneys returns attorneys currently able to act.
func (d LpaStoreData) ActiveAttorneys() []LpaStoreAttorney {
	var active []LpaStoreAttorney
	for _, a := range d.Attorneys {
		if a.Status == ActiveAttorneyStatus {
			active = append(active, a)
		}
	}
	return active
}

type DigitalLpa struct {
	UID          string       `json:"uId"`
	SiriusData   SiriusData   `json:"opg.poas.sirius"`
	LpaStoreData LpaStoreData `json:"opg.poas.lpastore"`
}

// DigitalLpa fetches the combined Sirius and LPA store record. presignImages
// asks Sirius to include signed URLs for scanned images.
func (c *Client) DigitalLpa(ctx Context, uid string, presignImages bool) (DigitalLpa, error) {
	path := fmt.Sprintf("/lpa-api/v1/digital-lpas/%s", uid)
	if presignImages {
		path += "?presignImages"
	}

	var v DigitalLpa
	err := c.get(ctx, path, &v)

	return v, err
}
