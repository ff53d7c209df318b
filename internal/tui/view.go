package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/notifier"
)

var categoryTitles = map[models.Category]string{
	models.CategoryEnglish:    "English Word",
	models.CategorySpanish:    "Spanish Word",
	models.CategoryCoding:     "Coding Term",
	models.CategoryFinance:    "Finance Term",
	models.CategoryPhilosophy: "Philosophy Concept",
	models.CategoryPolitics:   "Political Term",
	models.CategoryQuote:      "Stoic Quote",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateLoading:
		content = m.spinner.View() + " " + m.loading
	case constants.StateAuth:
		content = m.viewAuth()
	case constants.StateBrowsing:
		content = m.viewBrowsing()
	case constants.StateQuizzing:
		content = m.viewQuiz()
	case constants.StateComplete:
		content = m.viewComplete()
	case constants.StateConfirmReset:
		content = m.viewConfirmReset()
	}

	parts := []string{content}
	if t, ok := m.toasts.Latest(); ok {
		parts = append(parts, "", notifier.Render(t.Title, t.Description, t.Severity))
	}
	if m.state != constants.StateLoading {
		parts = append(parts, "", m.help.View(m))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewAuth() string {
	heading := "Sign in to continue learning"
	if m.authForm.SignUp {
		heading = "Create an account to start learning"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Daily Learning"),
		subtleStyle.Render(heading),
		"",
		m.form.View(),
	)
}

func (m Model) viewHeader() string {
	name := ""
	if m.user != nil {
		name = subtleStyle.Render("  " + m.user.DisplayName())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Daily Learning")+name,
		lipgloss.JoinHorizontal(lipgloss.Top,
			badgeStyle.Render(fmt.Sprintf("Day %d", m.learner.State().DayIndex+1)),
			" ",
			badgeStyle.Render(fmt.Sprintf("%d day streak", m.learner.State().Stats.Streak)),
		),
	)
}

func (m Model) viewStats() string {
	stats := m.learner.State().Stats
	cell := func(value, label string) string {
		return lipgloss.NewStyle().Width(18).Render(
			lipgloss.JoinVertical(lipgloss.Left, statValueStyle.Render(value), subtleStyle.Render(label)),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		termStyle.Render("Your Progress"),
		lipgloss.JoinHorizontal(lipgloss.Top,
			cell(fmt.Sprint(stats.TotalDays), "Days Learned"),
			cell(fmt.Sprintf("%d%%", m.learner.State().Accuracy()), "Quiz Accuracy"),
			cell(fmt.Sprint(stats.CorrectAnswers), "Correct Answers"),
			cell(fmt.Sprint(stats.Streak), "Current Streak"),
		),
	)
}

func (m Model) viewBrowsing() string {
	day, err := m.machine.Today(m.learner.State())
	if err != nil {
		return dangerStyle.Render(err.Error())
	}

	var cards []string
	for _, c := range models.Categories() {
		cards = append(cards, renderCard(day, c))
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		m.viewStats(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func renderCard(day models.DayRecord, c models.Category) string {
	title := categoryStyle(c).Render(categoryTitles[c])
	if c == models.CategoryQuote {
		q := day.StoicQuote
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			exampleStyle.Render(fmt.Sprintf("%q", q.Quote)),
			termStyle.Render("- "+q.Author),
			subtleStyle.Render(q.Context),
		))
	}
	e, _ := day.Entry(c)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		termStyle.Render(e.Term),
		e.Definition,
		exampleStyle.Render(fmt.Sprintf("%q", e.Example)),
	))
}

func (m Model) viewQuiz() string {
	q, ok := m.learner.State().Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(badgeStyle.Render(fmt.Sprintf("Question %d of %d", m.learner.State().QuestionIndex+1, len(m.learner.State().Questions))))
	b.WriteString("  ")
	b.WriteString(categoryStyle(q.Category).Render(categoryTitles[q.Category]))
	b.WriteString("\n\n")
	b.WriteString(termStyle.Render(q.Question))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		marker := "  "
		if i == m.learner.State().Selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, opt)
		switch {
		case m.learner.State().Revealed && q.IsCorrect(i):
			line = correctStyle.Render(line + "  ✓")
		case m.learner.State().Revealed && i == m.learner.State().Selected:
			line = wrongStyle.Render(line + "  ✗")
		case i == m.learner.State().Selected:
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.learner.State().Revealed {
		b.WriteString("\n")
		if q.IsCorrect(m.learner.State().Selected) {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render("Not quite. The answer is: " + q.Correct()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewComplete() string {
	stats := m.learner.State().Stats
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Quiz Complete!"),
		subtleStyle.Render("Great job on today's review!"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(18).Render(lipgloss.JoinVertical(lipgloss.Left,
				correctStyle.Render(fmt.Sprintf("%d/%d", stats.CorrectAnswers, stats.TotalQuestions)),
				subtleStyle.Render("Correct"),
			)),
			lipgloss.JoinVertical(lipgloss.Left,
				statValueStyle.Render(fmt.Sprintf("%d%%", m.learner.State().Accuracy())),
				subtleStyle.Render("Accuracy"),
			),
		),
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("Reset all progress?"),
		"Your day, streak and quiz accuracy return to the start.",
		"",
		"[y] Yes",
		"[n] No",
	)
}
