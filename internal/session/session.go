package session

import (
	"github.com/julianstephens/daylearn/internal/logger"
)

// Session is the stateful wrapper around Machine for one signed-in learner. Transitions
// that change persisted fields write through the ProgressStore. A failed write is
// returned to the caller but the new in-memory state is kept.
type Session struct {
	machine  *Machine
	progress ProgressStore
	userID   string
	state    State
}

func New(m *Machine, progress ProgressStore, userID string) *Session {
	return &Session{
		machine:  m,
		progress: progress,
		userID:   userID,
		state:    NewState(),
	}
}

// Restore loads saved progress. On a read error the session keeps running from defaults
// and the error is returned for display.
func (s *Session) Restore() error {
	snap, err := s.progress.Load(s.userID)
	s.state = FromSnapshot(snap)
	return err
}

// Resume replaces the in-memory state with a snapshot that was loaded elsewhere.
func (s *Session) Resume(snap Snapshot) {
	s.state = FromSnapshot(snap)
}

func (s *Session) UserID() string { return s.userID }
func (s *Session) State() State { return s.state }
func (s *Session) Machine() *Machine { return s.machine }
func (s *Session) Accuracy() int { return s.state.Accuracy() }

func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}

func (s *Session) StartQuiz() error {
	next, err := s.machine.StartQuiz(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) SelectAnswer(i int) error {
	next, err := s.machine.SelectAnswer(s.state, i)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// SubmitAnswer reveals the current answer and persists the updated stats.
func (s *Session) SubmitAnswer() (bool, error) {
	next, correct, err := s.machine.SubmitAnswer(s.state)
	if err != nil {
		return false, err
	}
	s.state = next
	return correct, s.persist()
}

func (s *Session) NextQuestion() error {
	next, err := s.machine.NextQuestion(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) AdvanceDay() error {
	next, err := s.machine.AdvanceDay(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return s.persist()
}

// Abandon leaves the running quiz. Nothing is written since the stats were saved per answer.
func (s *Session) Abandon() error {
	next, err := s.machine.Abandon(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Reset returns to day one and deletes the saved progress.
func (s *Session) Reset() error {
	s.state = s.machine.Reset(s.state)
	if err := s.progress.Clear(s.userID); err != nil {
		logger.Error("Failed to clear saved progress", "user", s.userID, "error", err)
		return err
	}
	return nil
}

func (s *Session) persist() error {
	if err := s.progress.Save(s.userID, s.state.Snapshot()); err != nil {
		logger.Error("Failed to save progress", "user", s.userID, "error", err)
		return err
	}
	return nil
}
