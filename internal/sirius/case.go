package sirius

import (
	"fmt"
	"strings"
)

type CaseType string

const (
	CaseTypeLpa        = CaseType("lpa")
	CaseTypeEpa        = CaseType("epa")
	CaseTypeDigitalLpa = CaseType("DIGITAL_LPA")
)

// ParseCaseType maps a case type in any casing to a known CaseType.
func ParseCaseType(s string) (CaseType, error) {
	switch strings.ToLower(s) {
	case "lpa":
		return CaseTypeLpa, nil
	case "epa":
		return CaseTypeEpa, nil
	case "digital_lpa":
		return CaseTypeDigitalLpa, nil
	}

	return CaseType(""), fmt.Errorf("could not parse case type %q", s)
}

type Case struct {
	ID            int        `json:"id"`
	UID           string     `json:"uId"`
	CaseType      string     `json:"caseType"`
	CaseSubtype   string     `json:"caseSubtype,omitempty"`
	Status        string     `json:"status,omitempty"`
	ReceiptDate   DateString `json:"receiptDate,omitempty"`
	DueDate       DateString `json:"dueDate,omitempty"`
	Donor         *Person    `json:"donor,omitempty"`
	Correspondent *Person    `json:"correspondent,omitempty"`
}

// IsDigitalLpa reports whether the case is managed by the LPA store.
func (c Case) IsDigitalLpa() bool {
	return CaseType(c.CaseType) == CaseTypeDigitalLpa
}

// Summary is the short label used for a case in lists, e.g. "PW M-1234-1234-1234".
func (c Case) Summary() string {
	if short := SubtypeShortFormat(c.CaseSubtype); short != "" {
		return fmt.Sprintf("%s %s", short, c.UID)
	}
	return fmt.Sprintf("%s %s", strings.ToUpper(c.CaseType), c.UID)
}

func (c *Client) Case(ctx Context, id int) (Case, error) {
	var v Case
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d", id), &v)

	return v, err
}

func (c *Client) CasesByDonor(ctx Context, personID int) ([]Case, error) {
	var v struct {
		Cases []Case `json:"cases"`
	}
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/persons/%d/cases", personID), &v)

	return v.Cases, err
}

// SubtypeShortFormat abbreviates an LPA subtype.
func SubtypeShortFormat(subtype string) string {
	switch strings.ToLower(subtype) {
	case "personal-welfare", "hw", "pw":
		return "PW"
	case "property-and-affairs", "pfa", "pf":
		return "PA"
	default:
		return ""
	}
}
