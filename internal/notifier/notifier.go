// Package notifier surfaces short user-facing messages: sign-in results, save failures and
// the like. The TUI renders them as toasts; CLI commands print them and forward them to the
// desktop tray companion when it is running.
package notifier

import (
	"errors"

	"github.com/julianstephens/daylearn/internal/constants"
)

// Severity is re-exported so callers only import this package.
type Severity = constants.Severity

const (
	Info    = constants.SeverityInfo
	Success = constants.SeveritySuccess
	Warning = constants.SeverityWarning
	Error   = constants.SeverityError
)

// Notification is a single message as the TUI keeps it for display.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

type Notifier interface {
	Notify(title, description string, severity Severity) error
}

// Multi fans a notification out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(title, description string, severity Severity) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(title, description, severity); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every notification in memory. The TUI reads the latest one as its toast.
type Recorder struct {
	items []Notification
}

func (r *Recorder) Notify(title, description string, severity Severity) error {
	r.items = append(r.items, Notification{Title: title, Description: description, Severity: severity})
	return nil
}

// Latest returns the most recent notification.
func (r *Recorder) Latest() (Notification, bool) {
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func (r *Recorder) All() []Notification {
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}
