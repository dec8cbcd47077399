package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockClient struct {
	mock.Mock
}

func (m *mockClient) PostcodeLookup(ctx sirius.Context, postcode string) ([]sirius.PostcodeLookupAddress, error) {
	args := m.Called(ctx, postcode)
	return args.Get(0).([]sirius.PostcodeLookupAddress), args.Error(1)
}

func (m *mockClient) SearchPersons(ctx sirius.Context, term string) ([]sirius.Person, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]sirius.Person), args.Error(1)
}

func (m *mockClient) SearchUsers(ctx sirius.Context, term string) ([]sirius.User, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]sirius.User), args.Error(1)
}

func (m *mockClient) Search(ctx sirius.Context, term string, page int, personTypes []string) (sirius.SearchResponse, *sirius.Pagination, error) {
	args := m.Called(ctx, term, page, personTypes)
	return args.Get(0).(sirius.SearchResponse), args.Get(1).(*sirius.Pagination), args.Error(2)
}

func (m *mockClient) DeletedCases(ctx sirius.Context, uid string) ([]sirius.DeletedCase, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]sirius.DeletedCase), args.Error(1)
}

func (m *mockClient) RefDataByCategory(ctx sirius.Context, category string) ([]sirius.RefDataItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]sirius.RefDataItem), args.Error(1)
}

func (m *mockClient) CreateWarning(ctx sirius.Context, personID int, warningType, warningText string, caseIDs []int) error {
	return m.Called(ctx, personID, warningType, warningText, caseIDs).Error(0)
}

func (m *mockClient) CasesByDonor(ctx sirius.Context, personID int) ([]sirius.Case, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]sirius.Case), args.Error(1)
}

func (m *mockClient) AddPayment(ctx sirius.Context, caseID int, amount int, source string, paymentDate sirius.DateString) error {
	return m.Called(ctx, caseID, amount, source, paymentDate).Error(0)
}

func (m *mockClient) Case(ctx sirius.Context, id int) (sirius.Case, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sirius.Case), args.Error(1)
}

func (m *mockClient) Payments(ctx sirius.Context, caseID int) ([]sirius.Payment, error) {
	args := m.Called(ctx, caseID)
	return args.Get(0).([]sirius.Payment), args.Error(1)
}

func (m *mockClient) CaseSummary(ctx sirius.Context, uid string, presignImages bool) (sirius.CaseSummary, error) {
	args := m.Called(ctx, uid, presignImages)
	return args.Get(0).(sirius.CaseSummary), args.Error(1)
}

func (m *mockClient) Person(ctx sirius.Context, id int) (sirius.Person, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sirius.Person), args.Error(1)
}

func (m *mockClient) CreatePersonReference(ctx sirius.Context, personID int, referencedUID, reason string) error {
	return m.Called(ctx, personID, referencedUID, reason).Error(0)
}

func (m *mockClient) CreatePerson(ctx sirius.Context, person sirius.Person) (sirius.Person, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(sirius.Person), args.Error(1)
}

func (m *mockClient) EditPerson(ctx sirius.Context, id int, person sirius.Person) error {
	return m.Called(ctx, id, person).Error(0)
}

func (m *mockClient) DocumentTemplates(ctx sirius.Context, caseType sirius.CaseType) ([]sirius.DocumentTemplateData, error) {
	args := m.Called(ctx, caseType)
	return args.Get(0).([]sirius.DocumentTemplateData), args.Error(1)
}

func (m *mockClient) CreateDocument(ctx sirius.Context, caseID, correspondentID int, templateID string, inserts []string) (sirius.DocumentData, error) {
	args := m.Called(ctx, caseID, correspondentID, templateID, inserts)
	return args.Get(0).(sirius.DocumentData), args.Error(1)
}

func (m *mockClient) DraftDocuments(ctx sirius.Context, caseID int) ([]sirius.Document, error) {
	args := m.Called(ctx, caseID)
	return args.Get(0).([]sirius.Document), args.Error(1)
}

func (m *mockClient) Document(ctx sirius.Context, id int) (sirius.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sirius.Document), args.Error(1)
}

func (m *mockClient) EditDocument(ctx sirius.Context, id int, content string) (sirius.Document, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(sirius.Document), args.Error(1)
}

func (m *mockClient) ProgressIndicatorsForDigitalLpa(ctx sirius.Context, uid string) ([]sirius.ProgressIndicator, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]sirius.ProgressIndicator), args.Error(1)
}

func (m *mockClient) ObjectionsForCase(ctx sirius.Context, uid string) ([]sirius.Objection, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]sirius.Objection), args.Error(1)
}

func (m *mockClient) AddObjection(ctx sirius.Context, objection sirius.ObjectionRequest) error {
	return m.Called(ctx, objection).Error(0)
}

func (m *mockClient) ManageAttorneyDecisions(ctx sirius.Context, caseUID string, decisions []sirius.AttorneyDecisions) error {
	return m.Called(ctx, caseUID, decisions).Error(0)
}

func (m *mockClient) AssignTasks(ctx sirius.Context, assigneeID int, taskIDs []int) error {
	return m.Called(ctx, assigneeID, taskIDs).Error(0)
}

func (m *mockClient) Task(ctx sirius.Context, id int) (sirius.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sirius.Task), args.Error(1)
}

var _ Client = (*mockClient)(nil)
var _ Client = (*sirius.Client)(nil)

// fakeRenderer records what a handler asked to render.
type fakeRenderer struct {
	calls int
	code  int
	name  string
	data  gin.H
	err   error
}

func (r *fakeRenderer) HTML(c *gin.Context, code int, name string, data gin.H) error {
	r.calls++
	r.code = code
	r.name = name
	r.data = data
	if r.err != nil {
		return r.err
	}
	c.Data(code, "text/html; charset=utf-8", []byte(name))
	return nil
}

type testRequest struct {
	method string
	target string
	form   url.Values
	params gin.Params
}

// serve runs h against a single request outside of the router so tests can
// assert on the returned error.
func serve(h Handler, req testRequest) (*httptest.ResponseRecorder, *gin.Context, error) {
	var body io.Reader
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}

	method := req.method
	if method == "" {
		method = http.MethodGet
	}

	r := httptest.NewRequest(method, req.target, body)
	if req.form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	c.Params = req.params

	err := h(c)
	return w, c, err
}

var anyCtx = mock.AnythingOfType("sirius.Context")
