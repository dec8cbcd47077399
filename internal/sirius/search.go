package sirius

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
)

const PageLimit = 10

var AllPersonTypes = []string{
	"Donor",
	"Client",
	"Attorney",
	"Deputy",
	"Replacement Attorney",
	"Trust Corporation",
	"Notified Person",
	"Certificate Provider",
	"Correspondent",
}

const shortSearchTermMessage = "Search term must be at least three characters"

// errShortSearchTerm rejects a term before it reaches Sirius, in the shape
// Sirius itself uses so handlers answer 400.
func errShortSearchTerm() error {
	return ValidationError{
		Detail: shortSearchTermMessage,
		Field: FieldErrors{
			"term": {"reason": shortSearchTermMessage},
		},
	}
}

type searchRequest struct {
	Term        string   `json:"term"`
	PersonTypes []string `json:"personTypes,omitempty"`
	Limit       int      `json:"size,omitempty"`
	From        int      `json:"from"`
}

// Aggregations holds result counts per person type.
type Aggregations struct {
	PersonType map[string]int `json:"personType"`
}

// UnmarshalJSON accepts an object or the empty list Sirius sends when there
// are no results.
func (a *Aggregations) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '[' || bytes.Equal(data, []byte("null")) {
		*a = Aggregations{}
		return nil
	}

	var raw struct {
		PersonType map[string]int `json:"personType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.PersonType = raw.PersonType
	return nil
}

type SearchTotal struct {
	Count int `json:"count"`
}

type SearchResponse struct {
	Results      []Person     `json:"results"`
	Aggregations Aggregations `json:"aggregations"`
	Total        SearchTotal  `json:"total"`
}

type Pagination struct {
	TotalItems  int
	CurrentPage int
	TotalPages  int
	PageSize    int
}

// Search finds people by name, case reference or address. personTypes
// narrows the results; an empty list searches every type.
func (c *Client) Search(ctx Context, term string, page int, personTypes []string) (SearchResponse, *Pagination, error) {
	var v SearchResponse
	if len(term) < 3 {
		return v, nil, errShortSearchTerm()
	}

	if page < 1 {
		page = 1
	}

	if len(personTypes) == 0 {
		personTypes = AllPersonTypes
	}

	body := searchRequest{
		Term:        term,
		PersonTypes: personTypes,
		Limit:       PageLimit,
		From:        PageLimit * (page - 1),
	}

	if err := c.send(ctx, http.MethodPost, "/lpa-api/v1/search/persons", body, &v, http.StatusOK); err != nil {
		return v, nil, err
	}

	return v, &Pagination{
		TotalItems:  v.Total.Count,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(v.Total.Count) / float64(PageLimit))),
		PageSize:    PageLimit,
	}, nil
}

// SearchPersons is the unpaged search behind person autocompletes.
func (c *Client) SearchPersons(ctx Context, term string) ([]Person, error) {
	if len(term) < 3 {
		return nil, errShortSearchTerm()
	}

	var v struct {
		Results []Person `json:"results"`
	}
	if err := c.send(ctx, http.MethodPost, "/lpa-api/v1/search/persons", searchRequest{Term: term}, &v, http.StatusOK); err != nil {
		return nil, err
	}

	return v.Results, nil
}
