// Package cases holds stub fixtures for the Sirius case endpoints.
package cases

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gotrs-io/lpa-frontend/internal/mocks"
)

// Get stubs a case lookup with body.
func Get(ctx context.Context, m *mocks.Client, id int, body any, priority ...int) error {
	return m.AddMock(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d", id), http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body:   body,
	}, priority...)
}

func WarningsEmpty(ctx context.Context, m *mocks.Client, caseID int, priority ...int) error {
	return m.AddMock(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d/warnings", caseID), http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body:   []any{},
	}, priority...)
}

// TasksEmpty stubs the open-task listing the case pages request.
func TasksEmpty(ctx context.Context, m *mocks.Client, caseID int, priority ...int) error {
	url := fmt.Sprintf("/lpa-api/v1/cases/%d/tasks?filter=status%%3ANot+started%%2Cactive%%3Atrue&limit=99&sort=duedate%%3AASC", caseID)

	return m.AddMock(ctx, url, http.MethodGet, mocks.Response{
		Status: http.StatusOK,
		Body:   map[string]any{"tasks": []any{}},
	}, priority...)
}
