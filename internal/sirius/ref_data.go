package sirius

import (
	"context"
	"fmt"

	"github.com/gotrs-io/lpa-frontend/internal/cache"
)

const (
	WarningTypeCategory   = "warningType"
	PaymentSourceCategory = "paymentSource"
	ObjectionTypeCategory = "objectionType"
	CountryCategory       = "country"
)

type RefDataItem struct {
	Handle         string `json:"handle"`
	Label          string `json:"label"`
	UserSelectable bool   `json:"userSelectable"`
}

// RefDataByCategory returns a reference data list, served from the cache
// when a non-empty copy is held.
func (c *Client) RefDataByCategory(ctx Context, category string) ([]RefDataItem, error) {
	parent := ctx.Context
	if parent == nil {
		parent = context.Background()
	}

	return cache.GetOrLoad(parent, c.refData, category, func(reqCtx context.Context) ([]RefDataItem, error) {
		var v []RefDataItem
		if err := c.get(ctx.With(reqCtx), fmt.Sprintf("/lpa-api/v1/reference-data/%s", category), &v); err != nil {
			return nil, err
		}
		return v, nil
	})
}
