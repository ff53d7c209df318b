// Package quiz derives multiple-choice review questions from a day of content.
package quiz

import (
	"fmt"

	"github.com/julianstephens/daylearn/internal/catalog"
	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/models"
)

// template describes how one category becomes a question. Distractors are listed in
// option order with the correct answer spliced in at slot.
type template struct {
	category    models.Category
	prompt      func(models.DayRecord) string
	answer      func(models.DayRecord) string
	distractors [3]string
	slot        int
}

var templates = []template{
	{
		category:    models.CategoryEnglish,
		prompt:      func(d models.DayRecord) string { return fmt.Sprintf("What does %q mean?", d.English.Term) },
		answer:      func(d models.DayRecord) string { return d.English.Definition },
		distractors: [3]string{"A type of food", "A musical instrument", "A weather pattern"},
		slot:        0,
	},
	{
		category: models.CategorySpanish,
		prompt: func(d models.DayRecord) string {
			return fmt.Sprintf("What does the Spanish word %q mean?", d.Spanish.Term)
		},
		answer:      func(d models.DayRecord) string { return d.Spanish.Definition },
		distractors: [3]string{"A type of dance", "A color", "A building"},
		slot:        1,
	},
	{
		category:    models.CategoryCoding,
		prompt:      func(d models.DayRecord) string { return fmt.Sprintf("In coding, what is %s?", d.Coding.Term) },
		answer:      func(d models.DayRecord) string { return d.Coding.Definition },
		distractors: [3]string{"A type of computer", "A programming language", "A software company"},
		slot:        2,
	},
	{
		category:    models.CategoryFinance,
		prompt:      func(d models.DayRecord) string { return fmt.Sprintf("What is %s in finance?", d.Finance.Term) },
		answer:      func(d models.DayRecord) string { return d.Finance.Definition },
		distractors: [3]string{"A type of bank", "A stock exchange", "A currency"},
		slot:        3,
	},
	{
		category: models.CategoryPhilosophy,
		prompt: func(d models.DayRecord) string {
			return fmt.Sprintf("In philosophy, what is %s?", d.Philosophy.Term)
		},
		answer:      func(d models.DayRecord) string { return d.Philosophy.Definition },
		distractors: [3]string{"A form of government", "A branch of mathematics", "A literary genre"},
		slot:        2,
	},
	{
		category: models.CategoryPolitics,
		prompt: func(d models.DayRecord) string {
			return fmt.Sprintf("What does %q refer to in politics?", d.Politics.Term)
		},
		answer:      func(d models.DayRecord) string { return d.Politics.Definition },
		distractors: [3]string{"A type of tax", "A military rank", "A voting machine"},
		slot:        0,
	},
	{
		category: models.CategoryQuote,
		prompt: func(d models.DayRecord) string {
			return fmt.Sprintf("Who said: %q?", TruncateQuote(d.StoicQuote.Quote))
		},
		answer:      func(d models.DayRecord) string { return d.StoicQuote.Author },
		distractors: [3]string{"Socrates", "Confucius", "Friedrich Nietzsche"},
		slot:        2,
	},
}

// Synthesize builds one question per category from day, in category order.
// It is pure: the same record always yields the same questions.
func Synthesize(day models.DayRecord) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, 0, len(templates))
	for _, tpl := range templates {
		questions = append(questions, tpl.build(day))
	}
	return questions
}

// ForDay returns the review questions for a learner positioned at currentIndex, which
// cover the previous day. There is nothing to review on the first day.
func ForDay(c *catalog.Catalog, currentIndex int) []models.QuizQuestion {
	if currentIndex <= 0 {
		return nil
	}
	previous, err := c.GetDay(currentIndex - 1)
	if err != nil {
		return nil
	}
	return Synthesize(previous)
}

// Distractors returns the fixed wrong options for a category.
func Distractors(c models.Category) ([3]string, bool) {
	for _, tpl := range templates {
		if tpl.category == c {
			return tpl.distractors, true
		}
	}
	return [3]string{}, false
}

// TruncateQuote cuts a quote to its leading runes and marks the cut with an ellipsis, so
// the prompt length never hints at the author.
func TruncateQuote(quote string) string {
	runes := []rune(quote)
	if len(runes) > constants.QuotePromptRunes {
		runes = runes[:constants.QuotePromptRunes]
	}
	return string(runes) + "..."
}

func (t template) build(day models.DayRecord) models.QuizQuestion {
	var options [constants.OptionsPerQuestion]string
	next := 0
	for i := range options {
		if i == t.slot {
			options[i] = t.answer(day)
			continue
		}
		options[i] = t.distractors[next]
		next++
	}
	return models.QuizQuestion{
		Question:     t.prompt(day),
		Options:      options,
		CorrectIndex: t.slot,
		Category:     t.category,
	}
}
