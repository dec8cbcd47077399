package api

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

func TestRelationship(t *testing.T) {
	client := &mockClient{}
	client.On("Person", anyCtx, 189).Return(sirius.Person{ID: 189, Firstname: "John", Surname: "Doe"}, nil)

	renderer := &fakeRenderer{}
	w, _, err := serve(Relationship(client, renderer), testRequest{target: "/create-relationship?id=189"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "relationship.html", renderer.name)
	assert.Equal(t, "John Doe", renderer.data["Entity"])
	client.AssertNotCalled(t, "CreatePersonReference")
}

func TestRelationshipPost(t *testing.T) {
	client := &mockClient{}
	client.On("Person", anyCtx, 189).Return(sirius.Person{ID: 189, Firstname: "John", Surname: "Doe"}, nil)
	client.On("CreatePersonReference", anyCtx, 189, "7000-0000-0002", "Friend").Return(nil)

	renderer := &fakeRenderer{}
	_, _, err := serve(Relationship(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/create-relationship?id=189",
		form:   url.Values{"search": {"7000-0000-0002:Jane Doe (7000-0000-0002)"}, "reason": {"Friend"}},
	})
	require.NoError(t, err)
	assert.Equal(t, true, renderer.data["Success"])
	assert.Equal(t, "Jane Doe (7000-0000-0002)", renderer.data["SearchName"])
	client.AssertExpectations(t)
}

func TestRelationshipValidationError(t *testing.T) {
	client := &mockClient{}
	client.On("Person", anyCtx, 189).Return(sirius.Person{ID: 189}, nil)
	client.On("CreatePersonReference", anyCtx, 189, "", "").Return(sirius.ValidationError{
		Field: sirius.FieldErrors{"referencedUid": {"isEmpty": "Value is required"}},
	})

	renderer := &fakeRenderer{}
	w, _, err := serve(Relationship(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/create-relationship?id=189",
		form:   url.Values{},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ve := renderer.data["Error"].(sirius.ValidationError)
	assert.Equal(t, "Value is required", ve.Field["search"]["isEmpty"])
	assert.NotContains(t, ve.Field, "referencedUid")
}

func TestRelationshipPersonError(t *testing.T) {
	expected := errors.New("err")

	client := &mockClient{}
	client.On("Person", anyCtx, 189).Return(sirius.Person{}, expected)

	_, _, err := serve(Relationship(client, &fakeRenderer{}), testRequest{target: "/create-relationship?id=189"})
	assert.Equal(t, expected, err)
}

func TestRelationshipBadID(t *testing.T) {
	_, _, err := serve(Relationship(&mockClient{}, &fakeRenderer{}), testRequest{target: "/create-relationship?id=x"})
	assert.IsType(t, badRequestError{}, err)
}
