package session

import (
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/models"
)

func newMachine() *Machine {
	return NewMachine(catalog.Default())
}

func TestStartQuizAtFirstDay(t *testing.T) {
	m := newMachine()
	s := NewState()

	next, err := m.StartQuiz(s)
	if !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Fatalf("StartQuiz() at day 0 error = %v, want ErrInvalidTransition", err)
	}
	if next.Phase != PhaseBrowsing {
		t.Errorf("Phase = %v, want browsing", next.Phase)
	}
	if len(next.Questions) != 0 {
		t.Errorf("len(Questions) = %d, want 0", len(next.Questions))
	}
	if m.CanStartQuiz(s) {
		t.Error("CanStartQuiz() = true at day 0")
	}
}

func TestStartQuizReviewsPreviousDay(t *testing.T) {
	m := newMachine()
	s := NewState()
	s.DayIndex = 1

	next, err := m.StartQuiz(s)
	if err != nil {
		t.Fatalf("StartQuiz() error = %v", err)
	}
	if next.Phase != PhaseQuizzing {
		t.Fatalf("Phase = %v, want quizzing", next.Phase)
	}
	if len(next.Questions) != 7 {
		t.Fatalf("len(Questions) = %d, want 7", len(next.Questions))
	}

	wantSlots := []int{0, 1, 2, 3, 2, 0, 2}
	for i, q := range next.Questions {
		if q.CorrectIndex != wantSlots[i] {
			t.Errorf("question %d (%s) CorrectIndex = %d, want %d", i, q.Category, q.CorrectIndex, wantSlots[i])
		}
	}
	if got := next.Questions[0].Question; got == "" {
		t.Error("English question prompt is empty")
	}
	day1, _ := m.Catalog().GetDay(0)
	if next.Questions[0].Correct() != day1.English.Definition {
		t.Errorf("English answer = %q, want definition of %q", next.Questions[0].Correct(), day1.English.Term)
	}
	if next.Questions[6].Correct() != "Marcus Aurelius" {
		t.Errorf("Quote answer = %q, want Marcus Aurelius", next.Questions[6].Correct())
	}
}

func TestQuizFlow(t *testing.T) {
	m := newMachine()
	s := NewState()
	s.DayIndex = 1
	s, _ = m.StartQuiz(s)

	if m.CanSubmit(s) {
		t.Fatal("CanSubmit() = true with no selection")
	}
	if _, _, err := m.SubmitAnswer(s); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Fatalf("SubmitAnswer() without selection error = %v", err)
	}
	if _, err := m.NextQuestion(s); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Fatalf("NextQuestion() before reveal error = %v", err)
	}
	if _, err := m.SelectAnswer(s, 4); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Fatalf("SelectAnswer(4) error = %v", err)
	}

	for i := range s.Questions {
		q, ok := s.Current()
		if !ok {
			t.Fatalf("Current() not ok at question %d", i)
		}
		var err error
		if s, err = m.SelectAnswer(s, q.CorrectIndex); err != nil {
			t.Fatalf("SelectAnswer() error = %v", err)
		}
		var correct bool
		if s, correct, err = m.SubmitAnswer(s); err != nil {
			t.Fatalf("SubmitAnswer() error = %v", err)
		}
		if !correct {
			t.Errorf("question %d reported incorrect", i)
		}
		if _, err := m.SelectAnswer(s, 0); !stderrors.Is(err, errors.ErrInvalidTransition) {
			t.Errorf("SelectAnswer() after reveal error = %v", err)
		}
		if s, err = m.NextQuestion(s); err != nil {
			t.Fatalf("NextQuestion() error = %v", err)
		}
	}

	if s.Phase != PhaseComplete || !s.QuizComplete() {
		t.Fatalf("Phase = %v, want complete", s.Phase)
	}
	if s.Stats.CorrectAnswers != 7 || s.Stats.TotalQuestions != 7 {
		t.Errorf("Stats = %+v, want 7/7", s.Stats)
	}
	if s.Accuracy() != 100 {
		t.Errorf("Accuracy() = %d, want 100", s.Accuracy())
	}
	if !m.CanAdvance(s) {
		t.Error("CanAdvance() = false after completing quiz")
	}
}

func TestAccuracyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		answers  int
		correct  int
		accuracy int
	}{
		{"all correct", 7, 7, 100},
		{"all wrong", 7, 0, 0},
		{"one of four", 4, 1, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine()
			s := NewState()
			s.DayIndex = 1
			s, _ = m.StartQuiz(s)

			for i := 0; i < tt.answers; i++ {
				q, _ := s.Current()
				pick := q.CorrectIndex
				if i >= tt.correct {
					pick = (q.CorrectIndex + 1) % 4
				}
				s, _ = m.SelectAnswer(s, pick)
				s, _, _ = m.SubmitAnswer(s)
				s, _ = m.NextQuestion(s)
			}

			if got := s.Accuracy(); got != tt.accuracy {
				t.Errorf("Accuracy() = %d, want %d", got, tt.accuracy)
			}
		})
	}
}

func TestCorrectNeverExceedsTotal(t *testing.T) {
	m := newMachine()
	rng := rand.New(rand.NewSource(42))
	s := NewState()
	s.DayIndex = 1

	for step := 0; step < 2000; step++ {
		switch rng.Intn(7) {
		case 0:
			s, _ = m.StartQuiz(s)
		case 1:
			s, _ = m.SelectAnswer(s, rng.Intn(6)-1)
		case 2, 3:
			s, _, _ = m.SubmitAnswer(s)
		case 4:
			s, _ = m.NextQuestion(s)
		case 5:
			s, _ = m.AdvanceDay(s)
		case 6:
			if rng.Intn(10) == 0 {
				s = m.Reset(s)
			}
		}
		if s.Stats.CorrectAnswers > s.Stats.TotalQuestions {
			t.Fatalf("step %d: correct %d > total %d", step, s.Stats.CorrectAnswers, s.Stats.TotalQuestions)
		}
		if err := s.Stats.Validate(); err != nil {
			t.Fatalf("step %d: invalid stats: %v", step, err)
		}
	}
}

func TestAdvanceDay(t *testing.T) {
	m := newMachine()
	s := NewState()

	s, err := m.AdvanceDay(s)
	if err != nil {
		t.Fatalf("AdvanceDay() error = %v", err)
	}
	want := models.Stats{TotalDays: 2, Streak: 2}
	if s.DayIndex != 1 || s.Stats != want {
		t.Errorf("after skip: day %d stats %+v, want day 1 stats %+v", s.DayIndex, s.Stats, want)
	}

	quizzing, _ := m.StartQuiz(s)
	if _, err := m.AdvanceDay(quizzing); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("AdvanceDay() while quizzing error = %v", err)
	}
}

func TestAdvanceDayAtLastIndex(t *testing.T) {
	m := newMachine()
	s := NewState()
	s.DayIndex = m.Catalog().LastIndex()
	s, _ = m.StartQuiz(s)
	q, _ := s.Current()
	s, _ = m.SelectAnswer(s, q.CorrectIndex)
	s, _, _ = m.SubmitAnswer(s)
	for s.Phase == PhaseQuizzing {
		if !s.Revealed {
			s, _ = m.SelectAnswer(s, 0)
			s, _, _ = m.SubmitAnswer(s)
		}
		s, _ = m.NextQuestion(s)
	}
	before := s.Stats

	next, err := m.AdvanceDay(s)
	if err != nil {
		t.Fatalf("AdvanceDay() error = %v", err)
	}
	if next.DayIndex != m.Catalog().LastIndex() {
		t.Errorf("DayIndex = %d, want %d", next.DayIndex, m.Catalog().LastIndex())
	}
	if next.Stats != before {
		t.Errorf("Stats changed at last day: %+v -> %+v", before, next.Stats)
	}
	if next.Phase != PhaseBrowsing || len(next.Questions) != 0 || next.HasSelection() || next.Revealed {
		t.Errorf("quiz state not cleared: %+v", next)
	}
	if m.CanSkip(next) {
		t.Error("CanSkip() = true at last day")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	m := newMachine()
	s := NewState()
	s.DayIndex = 2
	s.Stats = models.Stats{TotalDays: 3, Streak: 3, CorrectAnswers: 5, TotalQuestions: 7}
	s, _ = m.StartQuiz(s)

	once := m.Reset(s)
	twice := m.Reset(once)

	want := models.Stats{TotalDays: 1, Streak: 1}
	for name, got := range map[string]State{"once": once, "twice": twice} {
		if got.DayIndex != 0 || got.Stats != want || got.Phase != PhaseBrowsing ||
			len(got.Questions) != 0 || got.HasSelection() || got.Revealed {
			t.Errorf("%s: Reset() = %+v", name, got)
		}
	}
}

func TestAbandonKeepsSubmittedAnswers(t *testing.T) {
	m := newMachine()
	s := NewState()
	s.DayIndex = 1
	s, _ = m.StartQuiz(s)
	s, _ = m.SelectAnswer(s, 0)
	s, _, _ = m.SubmitAnswer(s)

	next, err := m.Abandon(s)
	if err != nil {
		t.Fatalf("Abandon() error = %v", err)
	}
	if next.Phase != PhaseBrowsing || len(next.Questions) != 0 || next.Revealed {
		t.Errorf("Abandon() did not clear the quiz: %+v", next)
	}
	if next.Stats.TotalQuestions != 1 || next.DayIndex != 1 {
		t.Errorf("Abandon() changed progress: %+v", next)
	}
	if _, err := m.Abandon(next); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("Abandon() while browsing error = %v", err)
	}
}
