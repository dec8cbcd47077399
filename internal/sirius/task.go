package sirius

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Task struct {
	ID          int        `json:"id"`
	Status      string     `json:"status"`
	DueDate     DateString `json:"dueDate"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CaseItems   []Case     `json:"caseItems"`
	Assignee    User       `json:"assignee"`
}

func (t Task) Summary() string {
	if len(t.CaseItems) > 0 {
		return fmt.Sprintf("%s: %s", t.CaseItems[0].Summary(), t.Name)
	}
	return t.Name
}

type taskList struct {
	Tasks []Task `json:"tasks"`
}

func (c *Client) Task(ctx Context, id int) (Task, error) {
	var v Task
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/tasks/%d", id), &v)

	return v, err
}

// TasksForCase lists open tasks for a case, soonest due first.
func (c *Client) TasksForCase(ctx Context, caseID int) ([]Task, error) {
	query := url.Values{}
	query.Set("filter", "status:Not started,active:true")
	query.Set("limit", "99")
	query.Set("sort", "duedate:ASC")

	var v taskList
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d/tasks?%s", caseID, query.Encode()), &v)

	return v.Tasks, err
}

func (c *Client) AssignTasks(ctx Context, assigneeID int, taskIDs []int) error {
	if len(taskIDs) == 0 {
		return ValidationError{Field: FieldErrors{"id": {"required": "Select at least one task"}}}
	}

	ids := make([]string, len(taskIDs))
	for i, id := range taskIDs {
		ids[i] = strconv.Itoa(id)
	}

	return c.send(ctx, http.MethodPut, fmt.Sprintf("/lpa-api/v1/users/%d/tasks/%s", assigneeID, strings.Join(ids, "+")), nil, nil, http.StatusOK, http.StatusNoContent)
}
