package template

import (
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/xeonx/timeago"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gotrs-io/lpa-frontend/internal/shared"
	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

var registerOnce sync.Once

// stringFilter lifts a string mapping into a pongo2 filter.
func stringFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

func filterError(name string, err error) *pongo2.Error {
	return &pongo2.Error{Sender: "filter:" + name, OrigError: err}
}

func registerFilters() {
	registerOnce.Do(func() {
		filters := map[string]pongo2.FilterFunction{
			"fee":                           filterFee,
			"formatDate":                    filterFormatDate,
			"dateFormat":                    filterDateFormat,
			"timeago":                       filterTimeago,
			"nextWorkingDay":                filterNextWorkingDay,
			"translateRefData":              filterTranslateRefData,
			"howAttorneysMakeDecisions":     filterHowAttorneysMakeDecisions,
			"capitalise":                    stringFilter(Capitalise),
			"subtypeShortFormat":            stringFilter(sirius.SubtypeShortFormat),
			"subtypeLongFormat":             stringFilter(shared.SubtypeLongFormat),
			"howReplacementAttorneysStepIn": stringFilter(shared.HowReplacementAttorneysStepInLongForm),
			"whenTheLpaCanBeUsed":           stringFilter(shared.WhenTheLpaCanBeUsedLongForm),
			"lifeSustainingTreatment":       stringFilter(shared.LifeSustainingTreatmentOptionLongForm),
			"channelForFormat":              stringFilter(shared.ChannelForFormat),
			"progressIndicatorContext":      stringFilter(shared.ProgressIndicatorContext),
			"progressIndicatorStatus":       stringFilter(shared.ProgressIndicatorStatus),
			"objectionType":                 stringFilter(shared.ObjectionType),
			"identityCheckType":             stringFilter(shared.IdentityCheckType),
		}

		for name, fn := range filters {
			if pongo2.FilterExists(name) {
				_ = pongo2.ReplaceFilter(name, fn)
				continue
			}
			_ = pongo2.RegisterFilter(name, fn)
		}
	})
}

// Capitalise title-cases text.
func Capitalise(text string) string {
	return cases.Title(language.English).String(text)
}

func filterFee(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(sirius.FormatFee(in.Integer())), nil
}

// filterFormatDate renders a date as DD/MM/YYYY.
func filterFormatDate(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	s := sirius.DateString(in.String())
	if s == "" {
		return pongo2.AsValue(""), nil
	}

	t, err := s.Time()
	if err != nil {
		return nil, filterError("formatDate", err)
	}

	return pongo2.AsValue(t.Format("02/01/2006")), nil
}

// filterDateFormat renders a date with a Go layout, e.g. "2 January 2006".
// Unparseable dates render as "invalid date" rather than failing the page.
func filterDateFormat(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() || in.String() == "" {
		return pongo2.AsValue(""), nil
	}

	layout := param.String()
	if layout == "" {
		layout = "2 January 2006"
	}

	if in.IsTime() {
		return pongo2.AsValue(in.Time().Format(layout)), nil
	}

	t, err := sirius.DateString(in.String()).Time()
	if err != nil {
		return pongo2.AsValue("invalid date"), nil
	}

	return pongo2.AsValue(t.Format(layout)), nil
}

func filterTimeago(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var t time.Time
	if in.IsTime() {
		t = in.Time()
	} else {
		parsed, err := sirius.DateString(in.String()).Time()
		if err != nil {
			return pongo2.AsValue(""), nil
		}
		t = parsed
	}

	return pongo2.AsValue(timeago.English.Format(t)), nil
}

func filterNextWorkingDay(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, err := sirius.DateString(in.String()).Time()
	if err != nil {
		return pongo2.AsValue(""), nil
	}

	layout := param.String()
	if layout == "" {
		layout = "2 January 2006"
	}

	return pongo2.AsValue(shared.NextWorkingDay(t).Format(layout)), nil
}

func filterTranslateRefData(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	items, _ := param.Interface().([]sirius.RefDataItem)
	return pongo2.AsValue(shared.TranslateRefData(items, in.String())), nil
}

// filterHowAttorneysMakeDecisions takes the sole-attorney flag as its parameter.
func filterHowAttorneysMakeDecisions(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(shared.HowAttorneysMakeDecisionsLongForm(param.IsTrue(), strings.TrimSpace(in.String()))), nil
}
