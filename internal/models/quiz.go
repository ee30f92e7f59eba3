package models

import "time"

// OptionsPerQuestion is the fixed number of answer options every question carries.
const OptionsPerQuestion = 4

// Question is one prompt with exactly four options and one designated correct option.
// CorrectAnswer must equal one of Options, exact case-sensitive match.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Quiz is a named, ordered set of multiple-choice questions.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
}

// QuizSummary is the list-endpoint shape. It deliberately omits question
// bodies so correct answers never leak before an attempt.
type QuizSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Summary trims a quiz down to its list form.
func (q Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:            q.ID,
		Title:         q.Title,
		QuestionCount: len(q.Questions),
		CreatedAt:     q.CreatedAt,
	}
}
