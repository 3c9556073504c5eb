package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in the device's local time zone, formatted
// YYYY-MM-DD. String comparison of two valid dates is chronological.
type Date string

// ParseDate validates s and returns it as a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(t.Format(dateLayout)), nil
}

// DateOf returns the local calendar day containing t.
func DateOf(t time.Time) Date {
	return Date(t.In(time.Local).Format(dateLayout))
}

// Time returns local midnight of d. An invalid date yields the zero time.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) AddDays(n int) Date {
	t := d.Time()
	return DateOf(time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, time.Local))
}

func (d Date) StartOfMonth() Date {
	t := d.Time()
	return DateOf(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local))
}

func (d Date) Before(o Date) bool { return d < o }
func (d Date) After(o Date) bool  { return d > o }

func (d Date) String() string { return string(d) }
