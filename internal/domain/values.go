package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TaskID is the opaque identifier assigned by the remote task resource.
// Servers may send it as a JSON number or string; it is always kept as a string.
type TaskID string

// UnmarshalJSON accepts both string and numeric ids.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(s)
	return nil
}

// String returns the id as a string.
func (id TaskID) String() string {
	return string(id)
}

// Number is a numeric task field (serial number, estimated hours).
// HTML forms submit these as strings, so both JSON numbers and numeric strings are accepted.
type Number float64

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	v, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// ParseNumber parses a decimal number. An empty string yields zero.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return Number(f), nil
}

// String formats the number without trailing zeros ("3", "2.5").
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form.
// Values that cannot be parsed are kept verbatim so they still round-trip to the server.
type Date string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate parses a YYYY-MM-DD date. Timestamps are truncated to their date part.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		if _, err := time.Parse(time.RFC3339, s); err == nil {
			s = s[:len(DateLayout)]
		}
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return Date(s), nil
}

// UnmarshalJSON normalizes timestamps to dates and keeps unknown formats as-is.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	*d = Date(s)
	return nil
}

// IsZero returns true if no date is set.
func (d Date) IsZero() bool {
	return d == ""
}

// IsValid returns true if the date is a well-formed calendar date.
func (d Date) IsValid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// String returns the date string.
func (d Date) String() string {
	return string(d)
}

// Members is the set of members assigned to a task.
// It is kept deduplicated and in enumeration order.
type Members []Member

// NewMembers builds a normalized member set, dropping values outside the enumeration.
func NewMembers(values ...Member) Members {
	seen := make(map[Member]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	out := Members{}
	for _, m := range AllMembers() {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

// ParseMembers parses a list of user inputs into a member set.
// Each input may itself be a comma-separated list.
func ParseMembers(inputs []string) (Members, error) {
	var parsed []Member
	for _, in := range inputs {
		for _, part := range strings.Split(in, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			m, err := ParseMember(part)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, m)
		}
	}
	return NewMembers(parsed...), nil
}

// Contains returns true if m is in the set.
func (ms Members) Contains(m Member) bool {
	for _, v := range ms {
		if v == m {
			return true
		}
	}
	return false
}

// Strings returns the member identifiers.
func (ms Members) Strings() []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(m)
	}
	return out
}

// Display joins the member labels with ", ".
func (ms Members) Display() string {
	labels := make([]string, len(ms))
	for i, m := range ms {
		labels[i] = m.Display()
	}
	return strings.Join(labels, ", ")
}

// MarshalJSON always emits an array, never null.
func (ms Members) MarshalJSON() ([]byte, error) {
	return json.Marshal(ms.Strings())
}

// UnmarshalJSON accepts an array of strings or a single comma-separated string.
// Unknown member names are dropped.
func (ms *Members) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var raw []string
	switch {
	case bytes.Equal(data, []byte("null")):
	case len(data) > 0 && data[0] == '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("assigned members: %w", err)
		}
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("assigned members: %w", err)
		}
		raw = strings.Split(s, ",")
	}
	values := make([]Member, 0, len(raw))
	for _, r := range raw {
		values = append(values, Member(strings.TrimSpace(r)))
	}
	*ms = NewMembers(values...)
	return nil
}

// ParseBool parses the loose boolean forms found in stored records.
// Anything other than true or "true" (case-insensitive) is false.
func ParseBool(data []byte) (bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return false, err
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true"), nil
	default:
		return false, nil
	}
}

// scalarString decodes a JSON string, number or null into a string.
func scalarString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return "", err
	}
	return num.String(), nil
}
