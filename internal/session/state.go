// Package session holds the learner's day pointer, statistics and in-progress quiz, and the
// transitions between browsing a day, answering its review quiz and finishing it.
package session

import "github.com/julianstephens/daylearn/internal/models"

// Phase is the top-level view the learner is in.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseQuizzing
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseQuizzing:
		return "quizzing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// NoSelection marks that no answer has been picked for the current question.
const NoSelection = -1

// State is the full session value threaded through Machine transitions. Only DayIndex
// and Stats are persisted; the quiz fields are rebuilt whenever a quiz starts.
type State struct {
	Phase         Phase
	DayIndex      int
	Stats         models.Stats
	Questions     []models.QuizQuestion
	QuestionIndex int
	Selected      int
	Revealed      bool
}

// NewState returns the state of a learner with no saved progress.
func NewState() State {
	return State{
		Phase:    PhaseBrowsing,
		Stats:    models.DefaultStats(),
		Selected: NoSelection,
	}
}

// FromSnapshot rebuilds a browsing state from persisted progress.
func FromSnapshot(snap Snapshot) State {
	s := NewState()
	s.DayIndex = snap.DayIndex
	s.Stats = snap.Stats
	return s
}

// Snapshot returns the persisted part of the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{DayIndex: s.DayIndex, Stats: s.Stats}
}

// Current returns the question being answered.
func (s State) Current() (models.QuizQuestion, bool) {
	if s.Phase != PhaseQuizzing || s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Questions) {
		return models.QuizQuestion{}, false
	}
	return s.Questions[s.QuestionIndex], true
}

func (s State) HasSelection() bool {
	return s.Selected != NoSelection
}

// IsLastQuestion reports whether the current question is the final one of the quiz.
func (s State) IsLastQuestion() bool {
	return s.QuestionIndex == len(s.Questions)-1
}

// QuizComplete reports whether the learner has answered every question.
func (s State) QuizComplete() bool {
	return s.Phase == PhaseComplete
}

// Accuracy is the rounded percentage of correct answers across all quizzes.
func (s State) Accuracy() int {
	return s.Stats.AccuracyRate()
}

func (s State) clearQuiz() State {
	s.Questions = nil
	s.QuestionIndex = 0
	s.Selected = NoSelection
	s.Revealed = false
	return s
}
