package api

import "github.com/gotrs-io/lpa-frontend/internal/sirius"

// Pagination drives the results pager. SearchTerm and Filters are query
// string fragments ("?term=..." and "&person-type=...") for page links.
type Pagination struct {
	SearchTerm  string
	Filters     string
	TotalItems  int
	CurrentPage int
	TotalPages  int
	PageSize    int
}

// Ellipsis marks a gap in Pages.
const Ellipsis = -1

func newPagination(p *sirius.Pagination, term, filters string) *Pagination {
	if p == nil {
		return nil
	}

	if term != "" {
		term = "?" + term
	}

	if filters != "" {
		filters = "&" + filters
	}

	return &Pagination{
		SearchTerm:  term,
		Filters:     filters,
		TotalItems:  p.TotalItems,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
	}
}

func (p *Pagination) Start() int {
	return (p.CurrentPage-1)*p.PageSize + 1
}

func (p *Pagination) End() int {
	end := p.CurrentPage * p.PageSize
	if end < p.TotalItems {
		return end
	}
	return p.TotalItems
}

func (p *Pagination) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p *Pagination) PreviousPage() int {
	return p.CurrentPage - 1
}

func (p *Pagination) HasNext() bool {
	return p.TotalItems > p.CurrentPage*p.PageSize
}

func (p *Pagination) NextPage() int {
	return p.CurrentPage + 1
}

// Pages lists page numbers to link, at most seven, using Ellipsis for gaps
// once there are more than seven pages.
func (p *Pagination) Pages() []int {
	if p.TotalPages <= 7 {
		pages := make([]int, p.TotalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := make([]int, 0, 7)

	if p.CurrentPage > 1 {
		switch prev := p.CurrentPage - 1; prev {
		case 1:
			pages = append(pages, 1)
		case 2:
			pages = append(pages, 1, 2)
		default:
			pages = append(pages, 1, Ellipsis, prev)
		}
	}

	pages = append(pages, p.CurrentPage)

	if p.CurrentPage < p.TotalPages {
		switch next := p.CurrentPage + 1; next {
		case p.TotalPages:
			pages = append(pages, p.TotalPages)
		case p.TotalPages - 1:
			pages = append(pages, next, p.TotalPages)
		default:
			pages = append(pages, next, Ellipsis, p.TotalPages)
		}
	}

	return pages
}
