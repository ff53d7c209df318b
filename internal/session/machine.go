package session

import (
	"fmt"

	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/quiz"
)

// Machine applies transitions to a State. It holds no learner state of its own; every
// method takes the current state and returns the next one. When a transition is not
// allowed the input state is returned unchanged with an error wrapping
// errors.ErrInvalidTransition.
type Machine struct {
	catalog *catalog.Catalog
}

func NewMachine(c *catalog.Catalog) *Machine {
	return &Machine{catalog: c}
}

func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// Today returns the day record the learner is currently browsing.
func (m *Machine) Today(s State) (models.DayRecord, error) {
	return m.catalog.GetDay(s.DayIndex)
}

func invalid(action string, reason string) error {
	return fmt.Errorf("%s: %s: %w", action, reason, errors.ErrInvalidTransition)
}

func (m *Machine) CanStartQuiz(s State) bool {
	return s.Phase != PhaseQuizzing && s.DayIndex > 0 && m.catalog.Contains(s.DayIndex)
}

func (m *Machine) CanSelect(s State, i int) bool {
	return s.Phase == PhaseQuizzing && !s.Revealed && i >= 0 && i < constants.OptionsPerQuestion
}

func (m *Machine) CanSubmit(s State) bool {
	return s.Phase == PhaseQuizzing && s.HasSelection() && !s.Revealed
}

func (m *Machine) CanNext(s State) bool {
	return s.Phase == PhaseQuizzing && s.Revealed
}

// CanAdvance reports whether the learner may continue to the next day after a quiz.
func (m *Machine) CanAdvance(s State) bool {
	return s.Phase == PhaseComplete
}

// CanSkip reports whether the learner may move forward without taking the quiz.
// Skipping is hidden on the last day since it would not move the pointer.
func (m *Machine) CanSkip(s State) bool {
	return s.Phase == PhaseBrowsing && s.DayIndex < m.catalog.LastIndex()
}

// StartQuiz builds the review quiz over the previous day's record.
func (m *Machine) StartQuiz(s State) (State, error) {
	if s.Phase == PhaseQuizzing {
		return s, invalid("start quiz", "a quiz is already in progress")
	}
	questions := quiz.ForDay(m.catalog, s.DayIndex)
	if len(questions) == 0 {
		return s, invalid("start quiz", "there is no previous day to review")
	}

	next := s.clearQuiz()
	next.Questions = questions
	next.Phase = PhaseQuizzing
	return next, nil
}

func (m *Machine) SelectAnswer(s State, i int) (State, error) {
	if s.Phase != PhaseQuizzing {
		return s, invalid("select answer", "no quiz in progress")
	}
	if s.Revealed {
		return s, invalid("select answer", "answer already submitted")
	}
	if i < 0 || i >= constants.OptionsPerQuestion {
		return s, invalid("select answer", fmt.Sprintf("option %d out of range", i))
	}
	s.Selected = i
	return s, nil
}

// SubmitAnswer reveals the current question and records the result in Stats.
func (m *Machine) SubmitAnswer(s State) (State, bool, error) {
	if !m.CanSubmit(s) {
		return s, false, invalid("submit answer", "no answer selected")
	}
	q, ok := s.Current()
	if !ok {
		return s, false, invalid("submit answer", "no current question")
	}

	correct := q.IsCorrect(s.Selected)
	s.Revealed = true
	s.Stats.TotalQuestions++
	if correct {
		s.Stats.CorrectAnswers++
	}
	return s, correct, nil
}

// NextQuestion moves past a revealed question, finishing the quiz after the last one.
func (m *Machine) NextQuestion(s State) (State, error) {
	if !m.CanNext(s) {
		return s, invalid("next question", "answer not submitted")
	}
	if s.IsLastQuestion() {
		s.Phase = PhaseComplete
		s.Selected = NoSelection
		s.Revealed = false
		return s, nil
	}
	s.QuestionIndex++
	s.Selected = NoSelection
	s.Revealed = false
	return s, nil
}

// AdvanceDay moves to the next day from the completion view or by skipping from the
// browsing view. On the last day the pointer and counters stay put, but the quiz is
// still cleared.
func (m *Machine) AdvanceDay(s State) (State, error) {
	if s.Phase == PhaseQuizzing {
		return s, invalid("advance day", "finish the quiz first")
	}
	next := s.clearQuiz()
	next.Phase = PhaseBrowsing
	if next.DayIndex < m.catalog.LastIndex() {
		next.DayIndex++
		next.Stats.TotalDays++
		next.Stats.Streak++
	}
	return next, nil
}

// Reset returns the learner to day one with default statistics. Always allowed.
func (m *Machine) Reset(State) State {
	return NewState()
}

// Abandon leaves a quiz without finishing it. Answers already submitted stay counted.
func (m *Machine) Abandon(s State) (State, error) {
	if s.Phase != PhaseQuizzing {
		return s, invalid("abandon quiz", "no quiz in progress")
	}
	next := s.clearQuiz()
	next.Phase = PhaseBrowsing
	return next, nil
}
