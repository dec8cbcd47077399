package api

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type SearchClient interface {
	Search(ctx sirius.Context, term string, page int, personTypes []string) (sirius.SearchResponse, *sirius.Pagination, error)
	DeletedCases(ctx sirius.Context, uid string) ([]sirius.DeletedCase, error)
}

type searchFilters struct {
	Set        bool
	PersonType []string
}

func (f searchFilters) Encode() string {
	if !f.Set {
		return ""
	}

	form := url.Values{}
	for _, v := range f.PersonType {
		form.Add("person-type", v)
	}

	return form.Encode()
}

// Selected reports whether personType is one of the active filters.
func (f searchFilters) Selected(personType string) bool {
	for _, v := range f.PersonType {
		if v == personType {
			return true
		}
	}
	return false
}

// newSearchFilters keeps only recognised person types.
func newSearchFilters(values []string) searchFilters {
	filters := searchFilters{}

	for _, v := range values {
		for _, pt := range sirius.AllPersonTypes {
			if v == pt {
				filters.PersonType = append(filters.PersonType, v)
				filters.Set = true
			}
		}
	}

	return filters
}

var (
	nonDigits = regexp.MustCompile(`\D+`)
	uidDigits = regexp.MustCompile(`^\d{12}$`)
)

func Search(client SearchClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		ctx := getContext(c)

		term := c.Query("term")
		if term == "" {
			return badRequestError{err: errors.New("search term required")}
		}

		search := url.Values{}
		search.Add("term", term)

		filters := newSearchFilters(c.QueryArray("person-type"))

		results, pagination, err := client.Search(ctx, term, getPage(c), filters.PersonType)
		if err != nil {
			return err
		}

		var deleted []sirius.DeletedCase
		if results.Total.Count == 0 {
			if digits := nonDigits.ReplaceAllString(term, ""); uidDigits.MatchString(digits) {
				deleted, err = client.DeletedCases(ctx, digits)
				if err != nil {
					return err
				}
			}
		}

		return renderer.HTML(c, http.StatusOK, "search.html", gin.H{
			"Results":      results.Results,
			"Total":        results.Total.Count,
			"Aggregations": results.Aggregations,
			"PersonTypes":  sirius.AllPersonTypes,
			"Filters":      filters,
			"SearchTerm":   term,
			"Pagination":   newPagination(pagination, search.Encode(), filters.Encode()),
			"DeletedCases": deleted,
		})
	}
}

func getPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
