package sirius

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// FeeString holds an amount in pounds ("82.00") that Sirius sends in pence.
type FeeString string

func (f *FeeString) UnmarshalJSON(amount []byte) error {
	if bytes.Equal([]byte("null"), amount) || bytes.Equal([]byte(`""`), amount) {
		*f = ""
		return nil
	}

	float, err := strconv.ParseFloat(string(bytes.Trim(amount, `"`)), 64)
	if err != nil {
		return err
	}
	*f = FeeString(fmt.Sprintf("%.2f", float/100))
	return nil
}

func (f FeeString) MarshalJSON() ([]byte, error) {
	if string(f) == "" {
		return []byte(`null`), nil
	}

	amount, err := f.ToPence()
	if err != nil {
		return nil, err
	}

	return []byte(`"` + amount + `"`), nil
}

// ToPence converts the pounds amount to a whole number of pence.
func (f FeeString) ToPence() (string, error) {
	float, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%.0f", float*100), nil
}

var amountPattern = regexp.MustCompile(`^\d+\.\d{2}$`)

// IsAmountValid accepts non-negative amounts with exactly two decimal places.
func IsAmountValid(amount string) bool {
	return amountPattern.MatchString(amount)
}

// PoundsToPence rounds to the nearest penny.
func PoundsToPence(pounds float64) int {
	return int(math.Round(pounds * 100))
}

// FormatFee renders an amount in pence as pounds with two decimal places.
func FormatFee(pence int) string {
	return fmt.Sprintf("%.2f", float64(pence)/100)
}
