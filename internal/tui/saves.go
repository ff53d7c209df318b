package tui

import "github.com/julianstephens/daylearn/internal/session"

// writeOp is one persistence request for a user. Writes are full overwrites, so only the
// newest parked op matters. userID is captured when the op is created so a write still
// lands after the user signs out.
type writeOp struct {
	userID string
	clear  bool
	snap   session.Snapshot
}

// saveRecorder is the ProgressStore the TUI session writes through. Update must not block,
// so it records the newest request and the model turns it into a write command.
type saveRecorder struct {
	op *writeOp
}

func (r *saveRecorder) Load(string) (session.Snapshot, error) {
	return session.DefaultSnapshot(), nil
}

func (r *saveRecorder) Save(userID string, snap session.Snapshot) error {
	r.op = &writeOp{userID: userID, snap: snap}
	return nil
}

func (r *saveRecorder) Clear(userID string) error {
	r.op = &writeOp{userID: userID, clear: true}
	return nil
}

// take returns and forgets the recorded request.
func (r *saveRecorder) take() (writeOp, bool) {
	if r.op == nil {
		return writeOp{}, false
	}
	op := *r.op
	r.op = nil
	return op, true
}
