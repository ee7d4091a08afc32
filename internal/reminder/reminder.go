// Package reminder schedules the daily "log your mood" notifications.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const scheduleFileName = "reminders.json"

// Default notification text.
const (
	DefaultTitle = "Time to log your mood 😊"
	DefaultBody  = "Open moodctl, take a photo and pick a color for how you feel."
)

// Time is a wall-clock time of day in the local zone.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DefaultTimes are the three daily reminders.
var DefaultTimes = []Time{
	{Hour: 9, Minute: 0},
	{Hour: 14, Minute: 0},
	{Hour: 21, Minute: 0},
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses "HH:MM".
func ParseTime(s string) (Time, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return Time{}, fmt.Errorf("invalid reminder time %q (use HH:MM)", s)
	}
	return Time{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// ParseTimes parses a list of "HH:MM" values.
func ParseTimes(values []string) ([]Time, error) {
	times := make([]Time, 0, len(values))
	for _, v := range values {
		t, err := ParseTime(v)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

// Schedule is the persisted reminder set.
type Schedule struct {
	Times     []Time    `json:"times"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"created_at"`
}

// Scheduler stores and removes reminders.
type Scheduler interface {
	Schedule(ctx context.Context, times []Time, recurring bool) error
	CancelAll(ctx context.Context) error
	// Current returns the active schedule, or nil when none is set.
	Current(ctx context.Context) (*Schedule, error)
}

// FileScheduler keeps the schedule as JSON in the data directory.
type FileScheduler struct {
	dataDir string
	now     func() time.Time
}

// NewFileScheduler creates a scheduler persisting under dataDir.
func NewFileScheduler(dataDir string) *FileScheduler {
	return &FileScheduler{dataDir: dataDir, now: time.Now}
}

// Path returns the schedule file location.
func (s *FileScheduler) Path() string {
	return filepath.Join(s.dataDir, scheduleFileName)
}

// Schedule replaces any existing reminders with times.
func (s *FileScheduler) Schedule(ctx context.Context, times []Time, recurring bool) error {
	if len(times) == 0 {
		return fmt.Errorf("no reminder times given")
	}
	for _, t := range times {
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return fmt.Errorf("invalid reminder time %s", t)
		}
	}
	if err := s.CancelAll(ctx); err != nil {
		return err
	}

	sorted := append([]Time(nil), times...)
	sort.Slice(sorted, func(i, j int) bool {
		return minutes(sorted[i]) < minutes(sorted[j])
	})

	data, err := json.MarshalIndent(Schedule{Times: sorted, Recurring: recurring, CreatedAt: s.now()}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return os.WriteFile(s.Path(), data, 0600)
}

// CancelAll removes every scheduled reminder.
func (s *FileScheduler) CancelAll(ctx context.Context) error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Current reads the schedule file. A missing file means no reminders.
func (s *FileScheduler) Current(ctx context.Context) (*Schedule, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sch Schedule
	if err := json.Unmarshal(data, &sch); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path(), err)
	}
	return &sch, nil
}

// Next returns the first reminder strictly after now, in now's location.
// It returns the zero time when times is empty.
func Next(times []Time, now time.Time) time.Time {
	var best time.Time
	for _, t := range times {
		at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
		if !at.After(now) {
			at = time.Date(now.Year(), now.Month(), now.Day()+1, t.Hour, t.Minute, 0, 0, now.Location())
		}
		if best.IsZero() || at.Before(best) {
			best = at
		}
	}
	return best
}

func minutes(t Time) int {
	return t.Hour*60 + t.Minute
}

var _ Scheduler = (*FileScheduler)(nil)
