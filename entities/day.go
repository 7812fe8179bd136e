package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// Day is a calendar date at day granularity. Two Days are equal when they
// name the same calendar date, whatever instant they were derived from.
type Day struct {
	t time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf drops the time of day from t, keeping the date as seen in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) IsZero() bool          { return d.t.IsZero() }
func (d Day) Year() int             { return d.t.Year() }
func (d Day) Month() time.Month     { return d.t.Month() }
func (d Day) Date() int             { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) AddDays(n int) Day     { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) String() string        { return d.t.Format(DayLayout) }

// Label renders the short form used on box cards, e.g. "Mon Jan 13".
func (d Day) Label() string {
	return d.t.Format("Mon Jan 2")
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
