package sirius

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CaseSummary is the digital LPA with its open tasks and warnings.
type CaseSummary struct {
	DigitalLpa  DigitalLpa
	TaskList    []Task
	WarningList []Warning
}

// CaseSummary fetches the digital LPA, then its tasks and warnings in parallel.
func (c *Client) CaseSummary(ctx Context, uid string, presignImages bool) (CaseSummary, error) {
	var cs CaseSummary

	lpa, err := c.DigitalLpa(ctx, uid, presignImages)
	if err != nil {
		return cs, err
	}
	cs.DigitalLpa = lpa

	caseID := lpa.SiriusData.ID
	parent := ctx.Context
	if parent == nil {
		parent = context.Background()
	}
	group, groupCtx := errgroup.WithContext(parent)

	group.Go(func() error {
		tasks, err := c.TasksForCase(ctx.With(groupCtx), caseID)
		if err != nil {
			return err
		}
		cs.TaskList = tasks
		return nil
	})

	group.Go(func() error {
		warnings, err := c.WarningsForCase(ctx.With(groupCtx), caseID, false)
		if err != nil {
			return err
		}
		cs.WarningList = warnings
		return nil
	})

	if err := group.Wait(); err != nil {
		return cs, err
	}

	return cs, nil
}
