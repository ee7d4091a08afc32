package mood

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for the timestamp column.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Entry is one persisted mood record.
type Entry struct {
	ID        int64    `json:"id"`
	Timestamp string   `json:"timestamp"`
	Mood      Score    `json:"mood"`
	PhotoURI  string   `json:"photoUri"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Draft is an entry under construction, before it has an ID or timestamp.
type Draft struct {
	Mood        Score
	PhotoURI    string
	Coordinates *Coordinates
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Time parses the entry timestamp.
func (e *Entry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.Timestamp)
}

// HasLocation reports whether the entry carries coordinates.
func (e *Entry) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Entry turns the draft into an unsaved entry stamped at t.
func (d Draft) Entry(t time.Time) Entry {
	e := Entry{
		Timestamp: FormatTimestamp(t),
		Mood:      d.Mood,
		PhotoURI:  d.PhotoURI,
	}
	if d.Coordinates != nil {
		lat, lon := d.Coordinates.Latitude, d.Coordinates.Longitude
		e.Latitude = &lat
		e.Longitude = &lon
	}
	return e
}

// Validate checks the invariants every stored entry must satisfy.
func (e *Entry) Validate() error {
	if err := ValidateScore(e.Mood); err != nil {
		return err
	}
	if strings.TrimSpace(e.PhotoURI) == "" {
		return fmt.Errorf("photo reference must not be empty")
	}
	if (e.Latitude == nil) != (e.Longitude == nil) {
		return fmt.Errorf("latitude and longitude must be set together")
	}
	if e.Latitude != nil {
		if !finite(*e.Latitude) || !finite(*e.Longitude) {
			return fmt.Errorf("coordinates must be finite numbers")
		}
		if *e.Latitude < -90 || *e.Latitude > 90 {
			return fmt.Errorf("latitude %f out of range", *e.Latitude)
		}
		if *e.Longitude < -180 || *e.Longitude > 180 {
			return fmt.Errorf("longitude %f out of range", *e.Longitude)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
