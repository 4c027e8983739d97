package types

import (
	"encoding/json"
	"time"
)

// dateFormat is the reference layout for DD/MM/YYYY.
const dateFormat = "02/01/2006"

// monthNames is the fixed table of lowercase month names used for display.
var monthNames = [12]string{
	"january",
	"february",
	"march",
	"april",
	"may",
	"june",
	"july",
	"august",
	"september",
	"october",
	"november",
	"december",
}

// Date is a calendar day.
type Date time.Time

// NewDate returns the Date for a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a string in DD/MM/YYYY format.
//
// Days that do not exist on the calendar, like 30/02, are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, err
	}

	return Date(t), nil
}

// String returns the date formatted as DD/MM/YYYY.
func (d Date) String() string {
	return time.Time(d).Format(dateFormat)
}

// Year returns the year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the month of the date.
func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

// Day returns the day of the month of the date.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// MonthName returns the lowercase name of the month of the date.
func (d Date) MonthName() string {
	return monthNames[int(d.Month())-1]
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Compare returns -1, 0 or 1 depending on whether d is before, on or
// after e.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// DaysInMonth returns the number of days of a month.
//
// It is computed as the difference between the first day of the given
// month and the first day of the following month. time.Date normalizes
// month 13 to January of the next year, so both the December rollover
// and leap years come out right without a table of month lengths.
func DaysInMonth(year int, month time.Month) int {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)

	return int(next.Sub(start).Hours() / 24)
}

// LastDayOfMonth returns the date of the last day of a month.
func LastDayOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, DaysInMonth(year, month))
}

// MarshalJSON implements the json.Marshaler interface.
// The date is written as a DD/MM/YYYY string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected as a string in DD/MM/YYYY format. The JSON
// literal null leaves the date untouched, every other value has to
// parse, including the empty string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
