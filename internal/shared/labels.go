package shared

import "github.com/gotrs-io/lpa-frontend/internal/sirius"

// notRecognised keeps unknown codes visible on the page instead of hiding them.
func notRecognised(kind, s string) string {
	return kind + " NOT RECOGNISED: " + s
}

func SubtypeLongFormat(subtype string) string {
	switch subtype {
	case "personal-welfare":
		return "Personal welfare"
	case "property-and-affairs":
		return "Property and affairs"
	case "hw":
		return "Health and welfare"
	case "pfa":
		return "Property and financial affairs"
	default:
		return ""
	}
}

func HowAttorneysMakeDecisionsLongForm(isSoleAttorney bool, s string) string {
	if isSoleAttorney {
		return "There is only one attorney appointed"
	}

	switch s {
	case "jointly":
		return "Jointly"
	case "jointly-and-severally":
		return "Jointly & severally"
	case "jointly-for-some-severally-for-others":
		return "Jointly for some, severally for others"
	case "":
		return "Not specified"
	default:
		return notRecognised("howAttorneysMakeDecisions", s)
	}
}

func HowReplacementAttorneysStepInLongForm(s string) string {
	switch s {
	case "all-can-no-longer-act":
		return "When all can no longer act"
	case "one-can-no-longer-act":
		return "When one can no longer act"
	case "another-way":
		return "Another way"
	case "":
		return "Not specified"
	default:
		return notRecognised("howReplacementAttorneysStepIn", s)
	}
}

func WhenTheLpaCanBeUsedLongForm(s string) string {
	switch s {
	case "when-has-capacity":
		return "As soon as it's registered"
	case "when-capacity-lost":
		return "When capacity is lost"
	case "":
		return "Not specified"
	default:
		return notRecognised("whenTheLpaCanBeUsed", s)
	}
}

func LifeSustainingTreatmentOptionLongForm(s string) string {
	switch s {
	case "option-a":
		return "Attorneys can give or refuse consent to LST"
	case "option-b":
		return "Attorneys cannot give or refuse consent to LST"
	case "":
		return "Not specified"
	default:
		return notRecognised("lifeSustainingTreatmentOption", s)
	}
}

func ChannelForFormat(s string) string {
	switch s {
	case "paper":
		return "Paper"
	case "online":
		return "Online"
	case "":
		return "Not specified"
	default:
		return notRecognised("channel", s)
	}
}

// ProgressIndicatorContext names an application progress indicator.
func ProgressIndicatorContext(s string) string {
	switch s {
	case "FEES":
		return "Fees"
	case "DONOR":
		return "Donor section"
	case "DONOR_ID":
		return "Donor identity confirmation"
	case "CERTIFICATE_PROVIDER_ID":
		return "Certificate provider identity confirmation"
	case "CERTIFICATE_PROVIDER_SIGNATURE":
		return "Certificate provider certificate"
	case "ATTORNEY_SIGNATURES":
		return "Attorney signatures"
	case "PREREGISTRATION_NOTICES":
		return "Pre-registration notices"
	case "REGISTRATION_NOTICES":
		return "Registration notices"
	case "RESTRICTIONS_AND_CONDITIONS":
		return "Restrictions and conditions"
	case "":
		return "Not specified"
	default:
		return notRecognised("indicator", s)
	}
}

func ProgressIndicatorStatus(s string) string {
	switch s {
	case "IN_PROGRESS":
		return "In progress"
	case "COMPLETE":
		return "Complete"
	case "CANNOT_START":
		return "Not started"
	case "":
		return "Not specified"
	default:
		return notRecognised("status", s)
	}
}

func ObjectionType(s string) string {
	switch s {
	case "factual":
		return "Factual"
	case "prescribed":
		return "Prescribed"
	case "thirdParty":
		return "Third Party"
	case "":
		return "Not specified"
	default:
		return notRecognised("objection type", s)
	}
}

// IdentityCheckType describes how a person's identity was checked, as used
// in "Passed phone identity check".
func IdentityCheckType(s string) string {
	switch s {
	case "opg-paper-id":
		return "phone"
	case "one-login":
		return "GOV.UK One Login"
	case "":
		return "Not specified"
	default:
		return notRecognised("identity check", s)
	}
}

// TranslateRefData returns the label for handle, or the handle itself when
// the list has no match.
func TranslateRefData(items []sirius.RefDataItem, handle string) string {
	for _, item := range items {
		if item.Handle == handle {
			return item.Label
		}
	}
	return handle
}
