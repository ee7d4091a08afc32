package reminder

import (
	"context"
	"fmt"
	"time"
)

// Runner fires notifications at the scheduled times until its context ends.
type Runner struct {
	Notifier Notifier
	Title    string
	Body     string

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewRunner creates a runner using the default notification text.
func NewRunner(n Notifier) *Runner {
	return &Runner{
		Notifier: n,
		Title:    DefaultTitle,
		Body:     DefaultBody,
		now:      time.Now,
		after:    time.After,
	}
}

// Run waits for each reminder in sch and notifies. A non-recurring
// schedule returns after each time has fired once. Notification errors are
// returned; context cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context, sch Schedule) error {
	if len(sch.Times) == 0 {
		return fmt.Errorf("no reminders scheduled")
	}
	remaining := len(sch.Times)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next := Next(sch.Times, r.now())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.after(next.Sub(r.now())):
		}
		if err := r.Notifier.Notify(ctx, r.Title, r.Body); err != nil {
			return err
		}
		if !sch.Recurring {
			remaining--
			if remaining == 0 {
				return nil
			}
		}
	}
}
