package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><body data-prefix="/lpa">
<div data-module="app-address-finder" data-app-address-finder-label="Find">
  <input id="f-postcode" name="postcode" disabled>
</div>
<button data-module="app-loading-button govuk-button">Save
  changes</button>
</body></html>`

func TestDocument(t *testing.T) {
	doc := ParseHTML(t, page)

	assert.Equal(t, []string{"app-address-finder", "app-loading-button", "govuk-button"}, doc.Modules())

	body := doc.ByTag("body")
	require.Len(t, body, 1)
	assert.Equal(t, "/lpa", body[0].Attr("data-prefix"))

	input, ok := doc.ByID("f-postcode")
	require.True(t, ok)
	assert.True(t, input.HasAttr("disabled"))
	assert.Equal(t, "", input.Attr("missing"))

	_, ok = doc.ByID("nope")
	assert.False(t, ok)

	assert.Equal(t, "Save changes", doc.ByTag("button")[0].Text())
	assert.Contains(t, doc.Text(), "Save changes")
}
