package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type AssignTaskClient interface {
	AssignTasks(ctx sirius.Context, assigneeID int, taskIDs []int) error
	Task(ctx sirius.Context, id int) (sirius.Task, error)
}

// parseAssignee reads the "{id}:{displayName}" value posted by the user
// autocomplete.
func parseAssignee(value string) (int, string) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, ""
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ""
	}

	return id, parts[1]
}

func AssignTask(client AssignTaskClient, renderer Renderer, flash *flashStore) Handler {
	return func(c *gin.Context) error {
		if err := c.Request.ParseForm(); err != nil {
			return badRequestError{err: err}
		}

		taskIDs, err := sliceAtoi(c.Request.Form["id"])
		if err != nil {
			return badRequestError{err: err}
		}
		if len(taskIDs) == 0 {
			return badRequestError{err: errors.New("no tasks selected")}
		}

		ctx := getContext(c)

		tasks := make([]sirius.Task, len(taskIDs))
		group, groupCtx := errgroup.WithContext(ctx.Context)
		for i, id := range taskIDs {
			group.Go(func() (err error) {
				tasks[i], err = client.Task(ctx.With(groupCtx), id)
				return err
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}

		var lpa *sirius.Case
		entities := make([]string, len(tasks))
		for i, task := range tasks {
			entities[i] = task.Summary()
			if lpa == nil && len(task.CaseItems) > 0 {
				lpa = &task.CaseItems[0]
			}
		}

		data := gin.H{
			"XSRFToken": ctx.XSRFToken,
			"TaskIDs":   taskIDs,
			"Entities":  entities,
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "assign-task.html", data)
		}

		assigneeID, assigneeName := parseAssignee(postFormString(c, "assigneeUser"))
		data["AssigneeUserName"] = assigneeName

		if assigneeID == 0 {
			data["Error"] = sirius.ValidationError{
				Field: sirius.FieldErrors{
					"assigneeUser": {"required": "Select a user to assign the task to"},
				},
			}
			return renderer.HTML(c, http.StatusBadRequest, "assign-task.html", data)
		}

		err = client.AssignTasks(ctx, assigneeID, taskIDs)
		if ve, ok := sirius.IsValidationError(err); ok {
			if errs, ok := ve.Field["assigneeId"]; ok {
				ve.Field["assigneeUser"] = errs
				delete(ve.Field, "assigneeId")
			}
			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "assign-task.html", data)
		} else if err != nil {
			return err
		}

		if lpa != nil && lpa.IsDigitalLpa() {
			flash.Set(c, FlashNotification{Title: "Task assigned"})
			return RedirectError(fmt.Sprintf("/lpa/%s", lpa.UID))
		}

		data["Success"] = true
		return renderer.HTML(c, http.StatusOK, "assign-task.html", data)
	}
}
