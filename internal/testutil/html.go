// Package testutil provides helpers for asserting on rendered pages.
package testutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// ParseHTML parses body, failing the test on error.
func ParseHTML(t *testing.T, body string) *Document {
	t.Helper()

	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	return &Document{root: root}
}

// Element wraps a single node.
type Element struct {
	node *html.Node
}

// Attr returns the named attribute, or "" when it is missing.
func (e Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present, even if empty.
func (e Element) HasAttr(name string) bool {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func (e Element) Tag() string {
	return e.node.Data
}

// Text is the whitespace-collapsed text content.
func (e Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Find returns all elements matching the predicate in document order.
func (d *Document) Find(match func(Element) bool) []Element {
	var found []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(Element{node: n}) {
			found = append(found, Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

// ByAttr finds elements with attribute name equal to value.
func (d *Document) ByAttr(name, value string) []Element {
	return d.Find(func(e Element) bool {
		return e.HasAttr(name) && e.Attr(name) == value
	})
}

// ByTag finds elements by tag name.
func (d *Document) ByTag(tag string) []Element {
	return d.Find(func(e Element) bool { return e.Tag() == tag })
}

// ByID returns the element with the given id.
func (d *Document) ByID(id string) (Element, bool) {
	found := d.ByAttr("id", id)
	if len(found) == 0 {
		return Element{}, false
	}
	return found[0], true
}

// Modules lists the data-module values on the page.
func (d *Document) Modules() []string {
	var modules []string
	for _, e := range d.Find(func(e Element) bool { return e.HasAttr("data-module") }) {
		modules = append(modules, strings.Fields(e.Attr("data-module"))...)
	}
	return modules
}

// Text is the whitespace-collapsed text of the whole page.
func (d *Document) Text() string {
	return Element{node: d.root}.Text()
}
