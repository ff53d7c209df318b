package learn

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylearn/internal/cli"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/notifier"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	s, err := ctx.LoadSession()
	if err != nil {
		return err
	}
	state := s.State()
	day, err := s.Machine().Today(state)
	if err != nil {
		return err
	}

	ctx.Printf("Day %d of %d  (%d day streak)\n", state.DayIndex+1, s.Machine().Catalog().Len(), state.Stats.Streak)
	for _, category := range models.Categories() {
		ctx.Println()
		if category == models.CategoryQuote {
			q := day.StoicQuote
			ctx.Printf("[%s]\n  %q\n  - %s\n  %s\n", category, q.Quote, q.Author, q.Context)
			continue
		}
		e, _ := day.Entry(category)
		ctx.Printf("[%s] %s\n  %s\n  e.g. %q\n", category, e.Term, e.Definition, e.Example)
	}

	ctx.Println()
	if s.Machine().CanStartQuiz(state) {
		ctx.Println("Yesterday's quiz is waiting in the interactive app (daylearn tui).")
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	s, err := ctx.LoadSession()
	if err != nil {
		return err
	}
	stats := s.State().Stats
	ctx.Printf("Current day:     %d of %d\n", s.State().DayIndex+1, s.Machine().Catalog().Len())
	ctx.Printf("Days learned:    %d\n", stats.TotalDays)
	ctx.Printf("Current streak:  %d\n", stats.Streak)
	ctx.Printf("Correct answers: %d/%d\n", stats.CorrectAnswers, stats.TotalQuestions)
	ctx.Printf("Quiz accuracy:   %d%%\n", s.Accuracy())
	return nil
}

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	s, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Reset all progress?").
			Description("Your day, streak and quiz accuracy return to the start.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !confirmed {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	if err := s.Reset(); err != nil {
		ctx.Notify("Progress not saved", err.Error(), notifier.Error)
		return err
	}
	ctx.Notify("Progress reset", "Starting again from day 1.", notifier.Info)
	return nil
}
