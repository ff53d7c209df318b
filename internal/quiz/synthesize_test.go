package quiz

import (
	"strings"
	"testing"

	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/models"
)

func TestSynthesizeShape(t *testing.T) {
	c := catalog.Default()
	order := models.Categories()

	for idx := 1; idx < c.Len(); idx++ {
		questions := ForDay(c, idx)
		if len(questions) != len(order) {
			t.Fatalf("day index %d: got %d questions, want %d", idx, len(questions), len(order))
		}
		for i, q := range questions {
			if q.Category != order[i] {
				t.Errorf("day index %d question %d: category %s, want %s", idx, i, q.Category, order[i])
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Fatalf("day index %d %s: correct index %d out of range", idx, q.Category, q.CorrectIndex)
			}
			matches := 0
			for _, opt := range q.Options {
				if opt == q.Correct() {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("day index %d %s: correct option appears %d times", idx, q.Category, matches)
			}
		}
	}
}

func TestDistractorsNeverEqualAnswer(t *testing.T) {
	for i, day := range catalog.Default().Days() {
		for _, q := range Synthesize(day) {
			wrong, ok := Distractors(q.Category)
			if !ok {
				t.Fatalf("no distractors for %s", q.Category)
			}
			for _, d := range wrong {
				if d == q.Correct() {
					t.Errorf("day %d %s: distractor %q equals the correct answer", i+1, q.Category, d)
				}
			}
		}
	}
}

func TestSynthesizeReviewOfFirstDay(t *testing.T) {
	c := catalog.Default()
	day, err := c.GetDay(0)
	if err != nil {
		t.Fatalf("GetDay(0) error = %v", err)
	}

	// The learner is on day 2 and reviews day 1
	questions := ForDay(c, 1)
	want := []struct {
		category models.Category
		slot     int
		answer   string
		term     string
	}{
		{models.CategoryEnglish, 0, day.English.Definition, "Ephemeral"},
		{models.CategorySpanish, 1, day.Spanish.Definition, "Sobremesa"},
		{models.CategoryCoding, 2, day.Coding.Definition, "API"},
		{models.CategoryFinance, 3, day.Finance.Definition, "Diversification"},
		{models.CategoryPhilosophy, 2, day.Philosophy.Definition, "Nihilism"},
		{models.CategoryPolitics, 0, day.Politics.Definition, "Bureaucracy"},
		{models.CategoryQuote, 2, "Marcus Aurelius", ""},
	}

	if len(questions) != len(want) {
		t.Fatalf("got %d questions, want %d", len(questions), len(want))
	}
	for i, w := range want {
		q := questions[i]
		if q.Category != w.category {
			t.Errorf("question %d category = %s, want %s", i, q.Category, w.category)
		}
		if q.CorrectIndex != w.slot {
			t.Errorf("%s correct index = %d, want %d", w.category, q.CorrectIndex, w.slot)
		}
		if q.Options[w.slot] != w.answer {
			t.Errorf("%s option[%d] = %q, want %q", w.category, w.slot, q.Options[w.slot], w.answer)
		}
		if w.term != "" && !strings.Contains(q.Question, w.term) {
			t.Errorf("%s prompt %q does not mention %q", w.category, q.Question, w.term)
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	day, _ := catalog.Default().GetDay(0)
	a := Synthesize(day)
	b := Synthesize(day)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("question %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestForDayAtFirstDay(t *testing.T) {
	c := catalog.Default()
	if got := ForDay(c, 0); len(got) != 0 {
		t.Errorf("ForDay(0) returned %d questions, want 0", len(got))
	}
	if got := ForDay(c, c.Len()+1); len(got) != 0 {
		t.Errorf("ForDay(out of range) returned %d questions, want 0", len(got))
	}
}

func TestTruncateQuote(t *testing.T) {
	tests := []struct {
		name  string
		quote string
		want  string
	}{
		{"long quote", "You have power over your mind, not outside events.", "You have power over your mind,..."},
		{"short quote", "Be one.", "Be one...."},
		{"exactly thirty", strings.Repeat("a", 30), strings.Repeat("a", 30) + "..."},
		{"multibyte", strings.Repeat("é", 40), strings.Repeat("é", 30) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateQuote(tt.quote); got != tt.want {
				t.Errorf("TruncateQuote(%q) = %q, want %q", tt.quote, got, tt.want)
			}
		})
	}
}

func TestQuotePromptHidesAuthor(t *testing.T) {
	for _, day := range catalog.Default().Days() {
		q := Synthesize(day)[len(models.Categories())-1]
		if strings.Contains(q.Question, day.StoicQuote.Author) {
			t.Errorf("quote prompt %q leaks the author", q.Question)
		}
	}
}
