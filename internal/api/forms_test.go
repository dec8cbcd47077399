package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

func donorForm() url.Values {
	return url.Values{
		"salutation":       {"Prof"},
		"firstname":        {"Melanie"},
		"surname":          {"Vanvolkenburg"},
		"dob":              {"1948-07-26"},
		"addressLine1":     {"29 Grange Road"},
		"town":             {"Birmingham"},
		"postcode":         {"B29 6BL"},
		"correspondenceBy": {"post", "email"},
		"researchOptOut":   {"Yes"},
	}
}

func TestCreateDonor(t *testing.T) {
	client := &mockClient{}
	client.On("CreatePerson", anyCtx, mock.MatchedBy(func(p sirius.Person) bool {
		return p.Firstname == "Melanie" &&
			p.DateOfBirth == "1948-07-26" &&
			p.CorrespondenceByPost && p.CorrespondenceByEmail && !p.CorrespondenceByPhone &&
			p.ResearchOptOut &&
			p.PersonType == "Donor"
	})).Return(sirius.Person{ID: 188, UID: "7000-0290-0192", Firstname: "Melanie"}, nil)

	renderer := &fakeRenderer{}
	w, _, err := serve(CreateDonor(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/create-donor",
		form:   donorForm(),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, renderer.data["Success"])
	assert.Equal(t, 188, renderer.data["Donor"].(sirius.Person).ID)
}

func TestCreateDonorValidationError(t *testing.T) {
	ve := sirius.ValidationError{Field: sirius.FieldErrors{"surname": {"isEmpty": "Value is required and can't be empty"}}}

	client := &mockClient{}
	client.On("CreatePerson", anyCtx, mock.Anything).Return(sirius.Person{}, ve)

	renderer := &fakeRenderer{}
	w, _, err := serve(CreateDonor(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/create-donor",
		form:   url.Values{"firstname": {"Melanie"}},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ve, renderer.data["Error"])
	assert.Equal(t, "Melanie", renderer.data["Donor"].(sirius.Person).Firstname)
}

func TestEditDonor(t *testing.T) {
	client := &mockClient{}
	client.On("Person", anyCtx, 188).Return(sirius.Person{ID: 188, Firstname: "Melanie"}, nil)

	renderer := &fakeRenderer{}
	_, _, err := serve(EditDonor(client, renderer), testRequest{target: "/edit-donor?id=188"})
	require.NoError(t, err)
	assert.Equal(t, "donor.html", renderer.name)
	assert.Nil(t, renderer.data["IsNew"])

	client.On("EditPerson", anyCtx, 188, mock.MatchedBy(func(p sirius.Person) bool {
		return p.ID == 188 && p.Surname == "Vanvolkenburg"
	})).Return(nil)

	_, _, err = serve(EditDonor(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/edit-donor?id=188",
		form:   donorForm(),
	})
	require.NoError(t, err)
	assert.Equal(t, true, renderer.data["Success"])
}

func TestAssignTask(t *testing.T) {
	client := &mockClient{}
	client.On("Task", anyCtx, 12).Return(sirius.Task{ID: 12, Name: "Review", CaseItems: []sirius.Case{{UID: "7000-0000-0001", CaseType: "LPA", CaseSubtype: "pfa"}}}, nil)
	client.On("Task", anyCtx, 13).Return(sirius.Task{ID: 13, Name: "Check"}, nil)

	renderer := &fakeRenderer{}
	_, _, err := serve(AssignTask(client, renderer, &flashStore{}), testRequest{target: "/assign-task?id=12&id=13"})
	require.NoError(t, err)

	assert.Equal(t, []string{"PA 7000-0000-0001: Review", "Check"}, renderer.data["Entities"])

	client.On("AssignTasks", anyCtx, 47, []int{12, 13}).Return(nil)

	_, _, err = serve(AssignTask(client, renderer, &flashStore{}), testRequest{
		method: http.MethodPost,
		target: "/assign-task?id=12&id=13",
		form:   url.Values{"assigneeUser": {"47:system admin"}},
	})
	require.NoError(t, err)
	assert.Equal(t, true, renderer.data["Success"])
	assert.Equal(t, "system admin", renderer.data["AssigneeUserName"])
}

func TestAssignTaskRedirectsToDigitalLpa(t *testing.T) {
	client := &mockClient{}
	client.On("Task", anyCtx, 12).Return(sirius.Task{ID: 12, CaseItems: []sirius.Case{{UID: "M-1111-2222-3333", CaseType: "DIGITAL_LPA"}}}, nil)
	client.On("AssignTasks", anyCtx, 47, []int{12}).Return(nil)

	_, _, err := serve(AssignTask(client, &fakeRenderer{}, &flashStore{}), testRequest{
		method: http.MethodPost,
		target: "/assign-task?id=12",
		form:   url.Values{"assigneeUser": {"47:system admin"}},
	})
	assert.Equal(t, RedirectError("/lpa/M-1111-2222-3333"), err)
}

func TestAssignTaskRequiresUser(t *testing.T) {
	client := &mockClient{}
	client.On("Task", anyCtx, 12).Return(sirius.Task{ID: 12}, nil)

	renderer := &fakeRenderer{}
	w, _, err := serve(AssignTask(client, renderer, &flashStore{}), testRequest{
		method: http.MethodPost,
		target: "/assign-task?id=12",
		form:   url.Values{"assigneeUser": {"nobody"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	client.AssertNotCalled(t, "AssignTasks")
}

func TestAssignTaskNoTasks(t *testing.T) {
	_, _, err := serve(AssignTask(&mockClient{}, &fakeRenderer{}, &flashStore{}), testRequest{target: "/assign-task"})
	assert.IsType(t, badRequestError{}, err)
}

func TestEditDocument(t *testing.T) {
	drafts := []sirius.Document{{ID: 1, SystemType: "LP-A"}, {ID: 2, SystemType: "LP-B"}}

	client := &mockClient{}
	client.On("Case", anyCtx, 800).Return(sirius.Case{ID: 800, CaseType: "LPA"}, nil)
	client.On("DraftDocuments", anyCtx, 800).Return(drafts, nil)
	client.On("Document", anyCtx, 1).Return(sirius.Document{ID: 1, Content: "<!DOCTYPE html>\n<html lang=\"en\"><p>Test content</p></html>"}, nil)
	client.On("Document", anyCtx, 2).Return(sirius.Document{ID: 2, Content: "<p>Other</p>"}, nil)

	renderer := &fakeRenderer{}
	_, _, err := serve(EditDocument(client, renderer), testRequest{target: "/edit-document?id=800&case=lpa"})
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html><html lang=\"en\"><p>Test content</p></html>", renderer.data["Document"].(sirius.Document).Content)

	_, _, err = serve(EditDocument(client, renderer), testRequest{target: "/edit-document?id=800&case=lpa&document=2"})
	require.NoError(t, err)
	assert.Equal(t, 2, renderer.data["Document"].(sirius.Document).ID)
}

func TestEditDocumentSanitisesContent(t *testing.T) {
	client := &mockClient{}
	client.On("Case", anyCtx, 800).Return(sirius.Case{ID: 800}, nil)
	client.On("DraftDocuments", anyCtx, 800).Return([]sirius.Document{{ID: 1}}, nil)
	client.On("EditDocument", anyCtx, 1, "<p>Edited</p>").Return(sirius.Document{ID: 1, Content: "<p>Edited</p>"}, nil)

	renderer := &fakeRenderer{}
	_, _, err := serve(EditDocument(client, renderer), testRequest{
		method: http.MethodPost,
		target: "/edit-document?id=800&case=lpa",
		form:   url.Values{"documentId": {"1"}, "documentTextEditor": {`<p>Edited</p><script>alert(1)</script>`}},
	})
	require.NoError(t, err)

	assert.Equal(t, true, renderer.data["Success"])
	client.AssertExpectations(t)
}
