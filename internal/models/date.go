package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.999999"
)

// timestampLayouts are tried in order when decoding a Timestamp. Naive
// values are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// Date is a calendar date, serialized as YYYY-MM-DD and stored as DATE.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string in format %s", DateLayout)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, DateLayout)
	}
	d.Time = t
	return nil
}

func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into Date")
	}
	t := v.Time
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) DateValue() (pgtype.Date, error) {
	return pgtype.Date{Time: d.Time, Valid: true}, nil
}

// Timestamp is a naive instant in UTC with microsecond precision, the
// resolution of a PostgreSQL TIMESTAMP column.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Microsecond)}
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be an ISO-8601 string")
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q, expected ISO-8601", s)
}

func (t *Timestamp) ScanTimestamp(v pgtype.Timestamp) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into Timestamp")
	}
	*t = NewTimestamp(v.Time)
	return nil
}

func (t Timestamp) TimestampValue() (pgtype.Timestamp, error) {
	return pgtype.Timestamp{Time: t.UTC(), Valid: true}, nil
}
