package sirius

import (
	"fmt"
	"net/url"
	"strings"
)

type PostcodeLookupAddress struct {
	Line1       string `json:"addressLine1"`
	Line2       string `json:"addressLine2"`
	Line3       string `json:"addressLine3"`
	Town        string `json:"town"`
	Postcode    string `json:"postcode"`
	Description string `json:"description"`
}

func (c *Client) PostcodeLookup(ctx Context, postcode string) ([]PostcodeLookupAddress, error) {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return nil, ValidationError{
			Detail: "Enter a postcode",
			Field:  FieldErrors{"postcode": {"required": "Enter a postcode"}},
		}
	}

	var v []PostcodeLookupAddress
	err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/postcode-lookup?postcode=%s", url.QueryEscape(postcode)), &v)
	if err != nil {
		return nil, err
	}

	return v, nil
}
