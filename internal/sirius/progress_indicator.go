package sirius

import "fmt"

type ProgressIndicator struct {
	Indicator string `json:"indicator"`
	Status    string `json:"status"`
}

func (c *Client) ProgressIndicatorsForDigitalLpa(ctx Context, uid string) ([]ProgressIndicator, error) {
	var v struct {
		DigitalLpaUid      string              `json:"digitalLpaUid"`
		ProgressIndicators []ProgressIndicator `json:"progressIndicators"`
	}

	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/digital-lpas/%s/progress-indicators", uid), &v)
	if err != nil {
		return nil, err
	}

	return v.ProgressIndicators, nil
}
