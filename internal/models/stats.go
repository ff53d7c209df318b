package models

import (
	"fmt"
	"math"
)

// Stats holds cumulative learning statistics for one user.
// JSON field names are part of the persisted format.
type Stats struct {
	TotalDays      int `json:"totalDays"`
	Streak         int `json:"streak"`
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
}

// DefaultStats returns the statistics of a learner who has just started.
func DefaultStats() Stats {
	return Stats{
		TotalDays:      1,
		Streak:         1,
		CorrectAnswers: 0,
		TotalQuestions: 0,
	}
}

// Validate checks the invariants of a Stats value
func (s Stats) Validate() error {
	if s.TotalDays < 1 {
		return fmt.Errorf("totalDays must be at least 1, got %d", s.TotalDays)
	}
	if s.Streak < 0 {
		return fmt.Errorf("streak must not be negative, got %d", s.Streak)
	}
	if s.CorrectAnswers < 0 || s.TotalQuestions < 0 {
		return fmt.Errorf("answer counts must not be negative")
	}
	if s.CorrectAnswers > s.TotalQuestions {
		return fmt.Errorf("correctAnswers (%d) exceeds totalQuestions (%d)", s.CorrectAnswers, s.TotalQuestions)
	}
	return nil
}

// AccuracyRate returns the rounded percentage of correct answers, or 0 when nothing was answered.
func (s Stats) AccuracyRate() int {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100))
}
