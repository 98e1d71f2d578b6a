// Package types implements special types for Hearth Budget.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year.
//
// The underlying time is always the first of the month, 00:00:00 UTC.
type Month time.Time

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month a time instant falls into.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	t := time.Time(m)
	return fmt.Sprintf("%04d-%02d", t.Year(), t.Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The month is represented as a "YYYY-MM" string.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// "YYYY-MM", RFC 3339 full-date and RFC 3339 timestamp representations
// are accepted. Everything except year and month is discarded.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, pattern := range []string{"2006-01", "2006-01-02", time.RFC3339} {
		t, err := time.Parse(pattern, value)
		if err == nil {
			*m = MonthOf(t)
			return nil
		}
	}

	return fmt.Errorf("parsing %q: not a valid month", value)
}

// Scan reads the value from the database.
func (m *Month) Scan(value any) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	*m = MonthOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type gorm uses for the column.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a number of years and months.
func (m Month) AddDate(years, months int) Month {
	return MonthOf(time.Time(m).AddDate(years, months, 0))
}

// Next returns the month after m.
func (m Month) Next() Month {
	return m.AddDate(0, 1)
}

// Previous returns the month before m.
func (m Month) Previous() Month {
	return m.AddDate(0, -1)
}

// Before reports whether m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is within the month.
func (m Month) Contains(t time.Time) bool {
	return t.UTC().Year() == time.Time(m).Year() && t.UTC().Month() == time.Time(m).Month()
}
