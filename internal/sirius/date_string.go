package sirius

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateString is a date in the format "YYYY-MM-DD" that will unmarshal from and
// marshal to the Sirius format of "DD/MM/YYYY"
type DateString string

var formats = []string{
	time.RFC3339,
	"02/01/2006",
	"2006-01-02",
	"02/01/2006 15:04:05",
}

func (s *DateString) UnmarshalJSON(text []byte) error {
	if bytes.Equal([]byte("null"), text) || bytes.Equal([]byte(`""`), text) {
		*s = ""
		return nil
	}

	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return errors.New("failed to unmarshal non-date")
	}

	text = text[1 : len(text)-1]

	// Sirius escapes forward slashes as "03\/04\/2022"
	text = bytes.ReplaceAll(text, []byte{'\\'}, []byte{})

	t, err := parseTime(string(text))
	if err != nil {
		return err
	}

	*s = DateString(t.Format("2006-01-02"))
	return nil
}

func (s DateString) MarshalJSON() ([]byte, error) {
	if string(s) == "" {
		return []byte(`null`), nil
	}

	date, err := s.ToSirius()
	if err != nil {
		return nil, err
	}

	return []byte(`"` + date + `"`), nil
}

// ToSirius formats the date as DD/MM/YYYY.
func (s DateString) ToSirius() (string, error) {
	parts := strings.Split(string(s), "-")
	if len(parts) != 3 {
		return "", errors.New("failed to format non-date")
	}

	return fmt.Sprintf(`%s/%s/%s`, parts[2], parts[1], parts[0]), nil
}

// Time parses the date in either supported layout.
func (s DateString) Time() (time.Time, error) {
	return parseTime(string(s))
}

// GetYear returns the four digit year.
func (s DateString) GetYear() (string, error) {
	t, err := s.Time()
	if err != nil {
		return "", err
	}
	return t.Format("2006"), nil
}

// DateFromParts builds a DateString from separate day, month and year inputs.
// It returns "" unless all three form a real calendar date.
func DateFromParts(day, month, year string) DateString {
	day, month, year = strings.TrimSpace(day), strings.TrimSpace(month), strings.TrimSpace(year)
	if day == "" || month == "" || year == "" {
		return ""
	}

	t, err := time.Parse("2/1/2006", fmt.Sprintf("%s/%s/%s", day, month, year))
	if err != nil {
		return ""
	}

	return DateString(t.Format("2006-01-02"))
}

func parseTime(input string) (time.Time, error) {
	for _, format := range formats {
		t, err := time.Parse(format, input)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("failed to unmarshal non-date, unrecognised format")
}
