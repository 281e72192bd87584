package domain

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thaitax/pit-estimator/pkg/dateutil"
)

// Date is a calendar date tolerant of the formats the UI snapshot stores.
// The zero Date means "not specified"; unparseable input normalizes to the
// zero Date instead of failing the decode, per the engine's
// silent-normalization policy.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the canonical YYYY-MM-DD form, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(dateutil.Format(d.Time))
}

// UnmarshalJSON accepts null, empty strings and any layout dateutil knows;
// everything else becomes the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		d.Time = time.Time{}
		return nil
	}
	if s == nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = dateutil.ParseLenient(*s)
	return nil
}

// MarshalYAML mirrors the JSON form.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return dateutil.Format(d.Time), nil
}

// UnmarshalYAML mirrors the JSON leniency.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = dateutil.ParseLenient(s)
	return nil
}
