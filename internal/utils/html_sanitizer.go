package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer cleans letter content posted from the document editor.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer allows the markup the rich text editor produces and
// nothing that can run script.
func NewHTMLSanitizer() *HTMLSanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements("b", "strong", "i", "em", "u", "s", "strike", "del", "sub", "sup")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("p", "br", "hr", "div", "span")
	p.AllowElements("ul", "ol", "li")
	p.AllowElements("blockquote")

	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "colgroup", "col")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("width").OnElements("table", "td", "th", "col")

	// Letterheads embed their logo as a data URL.
	p.AllowElements("img")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowDataURIImages()

	p.AllowElements("a")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)

	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.AllowAttrs("style").OnElements("p", "span", "div", "td", "th", "table", "h1", "h2", "h3", "li")
	p.AllowStyles("text-align").MatchingEnum("left", "right", "center", "justify").Globally()
	p.AllowStyles("font-weight", "font-style", "text-decoration", "color", "background-color", "width", "border", "padding", "margin").Globally()

	return &HTMLSanitizer{policy: p}
}

// Sanitize cleans content, removing scripts, handlers and unknown markup.
func (s *HTMLSanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}

// NormaliseDocument drops the newline Sirius puts between the doctype and
// the html element, which the editor otherwise renders as a blank line.
func NormaliseDocument(content string) string {
	return strings.ReplaceAll(content, "<!DOCTYPE html>\n<html lang=\"en\">", "<!DOCTYPE html><html lang=\"en\">")
}

// StripHTML removes all markup and returns plain text.
func StripHTML(content string) string {
	return bluemonday.StrictPolicy().Sanitize(content)
}
