// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day, stored as a SQL DATE and
// serialized as "YYYY-MM-DD".
type Date struct{ time.Time }

// From: build a Date from a time.Time (drop clock and zone)
func From(t time.Time) Date {
	return Date{
		Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Parse: build a Date from "YYYY-MM-DD"
func Parse(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

// Scan: accept time.Time or string/[]byte from the driver
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		d.Time = time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T for Date", v)
	}
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	// drivers sometimes hand back a full timestamp for DATE columns
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value: send "YYYY-MM-DD" so the DATE column gets a plain date literal
func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

// GormDataType keeps the column a real DATE on every dialect.
func (Date) GormDataType() string { return "date" }

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}
