package models

// QuizQuestion is a derived multiple-choice question. It is never persisted.
type QuizQuestion struct {
	Question     string    `json:"question"`
	Options      [4]string `json:"options"`
	CorrectIndex int       `json:"correct_index"`
	Category     Category  `json:"category"`
}

// Correct returns the option at CorrectIndex.
func (q QuizQuestion) Correct() string {
	return q.Options[q.CorrectIndex]
}

// IsCorrect reports whether the answer at index i is the right one.
func (q QuizQuestion) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}
