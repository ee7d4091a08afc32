// Package workflow turns user actions into a complete mood entry and
// commits it to storage.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// ErrMissingPhoto is returned by Save when no photo has been taken.
var ErrMissingPhoto = errors.New("take a photo before saving a mood")

// ErrCameraClosed is returned by TakePhoto outside the CameraOpen state.
var ErrCameraClosed = errors.New("camera is not open")

// ErrBusy is returned when an action is attempted while a save is running.
var ErrBusy = errors.New("a save is in progress")

// State is a step of the capture cycle.
type State int

const (
	Idle State = iota
	CameraRequested
	CameraOpen
	PhotoCaptured
	MoodSelected
	Saving
	Saved
	SaveFailed
)

var stateNames = [...]string{
	Idle:            "idle",
	CameraRequested: "camera-requested",
	CameraOpen:      "camera-open",
	PhotoCaptured:   "photo-captured",
	MoodSelected:    "mood-selected",
	Saving:          "saving",
	Saved:           "saved",
	SaveFailed:      "save-failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Capture drives one photo + mood + location cycle at a time.
type Capture struct {
	store   storage.Storage
	camera  capability.Camera
	locator capability.Locator
	now     func() time.Time
	logger  *log.Logger

	mu         sync.Mutex
	state      State
	photo      string
	score      mood.Score
	moodChosen bool
	saving     int
}

// Option configures a Capture.
type Option func(*Capture)

// WithClock overrides the save-time clock.
func WithClock(now func() time.Time) Option {
	return func(c *Capture) { c.now = now }
}

// WithLogger sets where non-fatal diagnostics go.
func WithLogger(l *log.Logger) Option {
	return func(c *Capture) { c.logger = l }
}

// WithoutLocation skips the location step entirely.
func WithoutLocation() Option {
	return func(c *Capture) { c.locator = nil }
}

// New creates a capture workflow. A nil locator disables location stamping.
func New(store storage.Storage, camera capability.Camera, locator capability.Locator, opts ...Option) *Capture {
	c := &Capture{
		store:   store,
		camera:  camera,
		locator: locator,
		now:     time.Now,
		logger:  log.New(io.Discard, "", 0),
		state:   Idle,
		score:   mood.DefaultScore,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current step.
func (c *Capture) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns the pending photo and selected mood.
func (c *Capture) Draft() mood.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mood.Draft{Mood: c.score, PhotoURI: c.photo}
}

// OpenCamera asks for camera permission and opens the camera on grant.
// On denial ErrPermissionDenied is returned and the workflow goes back to
// Idle, or to the pending draft if a photo was already taken.
func (c *Capture) OpenCamera(ctx context.Context) error {
	c.mu.Lock()
	if c.saving > 0 {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = CameraRequested
	c.mu.Unlock()

	perm, err := c.camera.RequestPermission(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || perm != capability.Granted {
		c.state = c.restingState()
		if err != nil {
			return fmt.Errorf("requesting camera permission: %w", err)
		}
		return fmt.Errorf("camera: %w", capability.ErrPermissionDenied)
	}
	c.state = CameraOpen
	return nil
}

// CancelCamera closes the camera without taking a photo.
func (c *Capture) CancelCamera() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CameraOpen {
		return
	}
	c.state = c.restingState()
}

// TakePhoto captures one photo, replacing any pending unsaved one.
func (c *Capture) TakePhoto(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.state != CameraOpen {
		c.mu.Unlock()
		return "", ErrCameraClosed
	}
	c.mu.Unlock()

	uri, err := c.camera.Capture(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("taking photo: %w", err)
	}
	c.photo = uri
	c.state = PhotoCaptured
	if c.moodChosen {
		c.state = MoodSelected
	}
	return uri, nil
}

// SelectMood sets the score used by the next save. It may be called any
// number of times, before or after the photo is taken.
func (c *Capture) SelectMood(s mood.Score) error {
	if err := mood.ValidateScore(s); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.score = s
	c.moodChosen = true
	if c.photo != "" && c.state != CameraOpen && c.saving == 0 {
		c.state = MoodSelected
	}
	return nil
}

// Save commits the current draft. Location is stamped best-effort: denial or
// failure is logged and the entry is saved without coordinates. On storage
// failure the draft is kept so Save can be retried.
func (c *Capture) Save(ctx context.Context) (mood.Entry, error) {
	c.mu.Lock()
	if c.photo == "" {
		c.mu.Unlock()
		return mood.Entry{}, ErrMissingPhoto
	}
	if c.state == CameraOpen || c.state == CameraRequested {
		c.mu.Unlock()
		return mood.Entry{}, fmt.Errorf("close the camera before saving")
	}
	draft := mood.Draft{Mood: c.score, PhotoURI: c.photo}
	c.state = Saving
	c.saving++
	c.mu.Unlock()

	draft.Coordinates = c.locate(ctx)
	e := draft.Entry(c.now())

	id, err := c.store.Insert(ctx, e)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving--
	if err != nil {
		c.state = SaveFailed
		return mood.Entry{}, err
	}
	e.ID = id
	if c.photo == draft.PhotoURI {
		c.photo = ""
		c.score = mood.DefaultScore
		c.moodChosen = false
	}
	c.state = Saved
	return e, nil
}

// Reset discards the draft and returns to Idle.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saving > 0 {
		return
	}
	c.photo = ""
	c.score = mood.DefaultScore
	c.moodChosen = false
	c.state = Idle
}

func (c *Capture) locate(ctx context.Context) *mood.Coordinates {
	if c.locator == nil {
		return nil
	}
	perm, err := c.locator.RequestPermission(ctx)
	if err != nil {
		c.logger.Printf("location permission: %v", err)
		return nil
	}
	if perm != capability.Granted {
		c.logger.Printf("location permission not granted; saving without coordinates")
		return nil
	}
	fix, err := c.locator.CurrentFix(ctx)
	if err != nil {
		c.logger.Printf("location error: %v", err)
		return nil
	}
	return &mood.Coordinates{Latitude: fix.Latitude, Longitude: fix.Longitude}
}

// restingState is where the cycle sits when no camera or save is active.
func (c *Capture) restingState() State {
	switch {
	case c.photo != "" && c.moodChosen:
		return MoodSelected
	case c.photo != "":
		return PhotoCaptured
	default:
		return Idle
	}
}
