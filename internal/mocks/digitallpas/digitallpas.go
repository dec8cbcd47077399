// Package digitallpas holds stub fixtures for the digital LPA endpoints.
package digitallpas

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gotrs-io/lpa-frontend/internal/mocks"
)

const (
	siriusKey   = "opg.poas.sirius"
	lpaStoreKey = "opg.poas.lpastore"
)

// Indicators lists the progress indicators in display order.
var Indicators = []string{
	"FEES",
	"DONOR_ID",
	"CERTIFICATE_PROVIDER_ID",
	"CERTIFICATE_PROVIDER_SIGNATURE",
	"ATTORNEY_SIGNATURES",
	"PREREGISTRATION_NOTICES",
	"REGISTRATION_NOTICES",
}

// Get stubs a digital LPA. overrides are merged one level deep into the
// sirius record, its donor and application, the LPA store record, its donor,
// certificate provider and attorneys (by index).
func Get(ctx context.Context, m *mocks.Client, uid string, overrides map[string]any) error {
	return m.AddMock(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s", uid), http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body:   Body(uid, overrides),
	})
}

// Body builds the digital LPA document Get registers.
func Body(uid string, overrides map[string]any) map[string]any {
	body := defaultBody(uid)

	sirius := body[siriusKey].(map[string]any)
	lpaStore := body[lpaStoreKey].(map[string]any)

	if o, ok := overrides[siriusKey].(map[string]any); ok {
		donor := merge(sirius["donor"].(map[string]any), asMap(o["donor"]))
		application := merge(sirius["application"].(map[string]any), asMap(o["application"]))

		merge(sirius, o)
		sirius["donor"] = donor
		sirius["application"] = application
	}

	if o, ok := overrides[lpaStoreKey].(map[string]any); ok {
		donor := merge(lpaStore["donor"].(map[string]any), asMap(o["donor"]))
		certificateProvider := merge(lpaStore["certificateProvider"].(map[string]any), asMap(o["certificateProvider"]))
		attorneys := mergeByIndex(lpaStore["attorneys"].([]any), o["attorneys"])

		merge(lpaStore, o)
		lpaStore["donor"] = donor
		lpaStore["certificateProvider"] = certificateProvider
		lpaStore["attorneys"] = attorneys
	}

	return body
}

// ObjectionsEmpty stubs an LPA with no objections.
func ObjectionsEmpty(ctx context.Context, m *mocks.Client, uid string) error {
	return m.AddMock(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s/objections", uid), http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body:   map[string]any{"uid": uid, "objections": []any{}},
	})
}

// ProgressFeesInProgress stubs progress with fees started and everything
// else unable to start.
func ProgressFeesInProgress(ctx context.Context, m *mocks.Client, uid string) error {
	return ProgressDefaultCannotStart(ctx, m, uid, map[string]string{"FEES": "IN_PROGRESS"})
}

// ProgressDefaultCannotStart stubs every indicator as CANNOT_START except
// those named in overrides.
func ProgressDefaultCannotStart(ctx context.Context, m *mocks.Client, uid string, overrides map[string]string) error {
	indicators := make([]map[string]string, 0, len(Indicators))
	for _, name := range Indicators {
		status := "CANNOT_START"
		if s, ok := overrides[name]; ok {
			status = s
		}
		indicators = append(indicators, map[string]string{"indicator": name, "status": status})
	}

	return m.AddMock(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s/progress-indicators", uid), http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body: map[string]any{
			"digitalLpaUid":      uid,
			"progressIndicators": indicators,
		},
	})
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func merge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// mergeByIndex replaces attorneys position by position, appending extras.
func mergeByIndex(dst []any, src any) []any {
	list, ok := src.([]any)
	if !ok {
		if typed, ok := src.([]map[string]any); ok {
			for _, v := range typed {
				list = append(list, v)
			}
		}
	}

	for i, v := range list {
		if i < len(dst) {
			dst[i] = v
		} else {
			dst = append(dst, v)
		}
	}
	return dst
}

func defaultBody(uid string) map[string]any {
	return map[string]any{
		"uId": uid,
		siriusKey: map[string]any{
			"id":                 1111,
			"uId":                uid,
			"status":             "Draft",
			"caseSubtype":        "property-and-affairs",
			"createdDate":        "31/10/2023",
			"investigationCount": 0,
			"complaintCount":     0,
			"taskCount":          0,
			"warningCount":       0,
			"dueDate":            "01/12/2023",
			"donor": map[string]any{
				"id":           1111,
				"firstname":    "Steven",
				"surname":      "Munnell",
				"dob":          "17/06/1982",
				"addressLine1": "1 Scotland Street",
				"addressLine2": "Netherton",
				"addressLine3": "Glasgow",
				"town":         "Edinburgh",
				"postcode":     "EH6 18J",
				"country":      "GB",
				"personType":   "Donor",
			},
			"application": map[string]any{
				"donorFirstNames": "Steven",
				"donorLastName":   "Munnell",
				"donorDob":        "17/06/1982",
				"donorAddress": map[string]any{
					"addressLine1": "1 Scotland Street",
					"postcode":     "EH6 18J",
				},
			},
		},
		lpaStoreKey: map[string]any{
			"lpaType":          "pf",
			"channel":          "online",
			"status":           "draft",
			"registrationDate": "2022-12-18",
			"peopleToNotify":   []any{},
			"donor": map[string]any{
				"uid":                       "572fe550-e465-40b3-a643-ca9564fabab8",
				"firstNames":                "Steven",
				"lastName":                  "Munnell",
				"email":                     "Steven.Munnell@example.com",
				"dateOfBirth":               "17/06/1982",
				"otherNamesKnownBy":         "",
				"contactLanguagePreference": "",
				"address": map[string]any{
					"line1":    "1 Scotland Street",
					"line2":    "Netherton",
					"line3":    "Glasgow",
					"town":     "Edinburgh",
					"postcode": "EH6 18J",
					"country":  "GB",
				},
			},
			"attorneys": []any{
				map[string]any{
					"uid":        "active-attorney-1",
					"firstNames": "Katheryn",
					"lastName":   "Collins",
					"address": map[string]any{
						"line1":    "9 O'Reilly Rise",
						"line2":    "Upton",
						"town":     "Williamsonborough",
						"postcode": "ZZ24 4JM",
						"country":  "GB",
					},
					"status":      "active",
					"signedAt":    "2022-12-19T09:12:59Z",
					"dateOfBirth": "1971-11-27",
					"mobile":      "0500133447",
					"email":       "K.Collins@example.com",
				},
			},
			"certificateProvider": map[string]any{
				"uid":        "c362e307-71b9-4070-bdde-c19b4cdf5c1a",
				"channel":    "online",
				"firstNames": "Rhea",
				"lastName":   "Vandervort",
				"address": map[string]any{
					"line1":    "290 Vivien Road",
					"line2":    "Lower Court",
					"line3":    "Tillman",
					"town":     "Oxfordshire",
					"postcode": "JJ80 7QL",
					"country":  "GB",
				},
				"email":    "Rhea.Vandervort@example.com",
				"phone":    "0151 087 7256",
				"signedAt": "2025-01-19T09:12:59Z",
			},
		},
	}
}
