package sirius

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Payment struct {
	ID          int           `json:"id,omitempty"`
	CaseID      int           `json:"case_id,omitempty"`
	Source      PaymentSource `json:"source"`
	Amount      FeeString     `json:"amount"`
	PaymentDate DateString    `json:"paymentdate"`
	Type        PaymentSource `json:"type"`
	CreatedDate DateString    `json:"createddate"`
	Locked      bool          `json:"locked,omitempty"`
	CreatedByID int           `json:"createdby_id"`
}

// PaymentSource is either a bare handle or a {name, value} pair.
type PaymentSource struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p *PaymentSource) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var handle string
		if err := json.Unmarshal(data, &handle); err != nil {
			return err
		}
		*p = PaymentSource{Name: handle, Value: handle}
		return nil
	}

	type raw PaymentSource
	var v raw
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PaymentSource(v)
	return nil
}

type addPaymentRequest struct {
	Amount      int        `json:"amount"`
	Source      string     `json:"source"`
	PaymentDate DateString `json:"paymentDate"`
}

func (c *Client) Payments(ctx Context, caseID int) ([]Payment, error) {
	var v []Payment
	if err := c.get(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d/payments", caseID), &v); err != nil {
		return nil, err
	}

	return v, nil
}

// AddPayment records a payment of amount pence against a case.
func (c *Client) AddPayment(ctx Context, caseID int, amount int, source string, paymentDate DateString) error {
	return c.post(ctx, fmt.Sprintf("/lpa-api/v1/cases/%d/payments", caseID), addPaymentRequest{
		Amount:      amount,
		Source:      source,
		PaymentDate: paymentDate,
	}, nil)
}
