package model

// QuestionType discriminates how a question is presented and graded.
type QuestionType string

const (
	MultipleChoice  QuestionType = "multiple-choice"
	FillInBlank     QuestionType = "fill-in-blank"
	BinaryChoice    QuestionType = "binary-choice"
	MultipleCorrect QuestionType = "multiple-correct"
)

// Question is an immutable quiz fixture. Exactly one of CorrectAnswer /
// CorrectAnswers is populated: CorrectAnswers for multiple-correct,
// CorrectAnswer for everything else.
type Question struct {
	ID             string       `json:"id"`
	Type           QuestionType `json:"type"`
	Prompt         string       `json:"question"`
	Options        []string     `json:"options,omitempty"`
	Option1        string       `json:"option1,omitempty"`
	Option2        string       `json:"option2,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer,omitempty"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty"`
}

// Quiz is the ordered question set owned by a lesson.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Answer is a submitted answer, a tagged variant selected by the
// question type: Choices for multiple-correct questions, Text for the
// single-answer types. The unused field is ignored by the grader.
type Answer struct {
	Text    string   `json:"text,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// Submission maps question id to the submitted answer. Questions absent
// from the map count as unanswered.
type Submission map[string]Answer
