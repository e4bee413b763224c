package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizType selects how a generated quiz is framed. It only affects the
// synthesized title, never scoring.
type QuizType string

// QuestionType selects the shape of generated questions and the quiz
// time limit.
type QuestionType string

const (
	QuizPractice QuizType = "practice"
	QuizTest     QuizType = "test"

	QuestionMCQ         QuestionType = "mcq"
	QuestionShortAnswer QuestionType = "short_answer"
)

func (t QuizType) Valid() bool {
	return t == QuizPractice || t == QuizTest
}

// Title returns the display form used in generated quiz titles.
func (t QuizType) Title() string {
	switch t {
	case QuizPractice:
		return "Practice"
	case QuizTest:
		return "Test"
	}
	return string(t)
}

func (t QuestionType) Valid() bool {
	return t == QuestionMCQ || t == QuestionShortAnswer
}

// TimeLimit returns the quiz time limit in minutes for this question type.
func (t QuestionType) TimeLimit() int {
	if t == QuestionMCQ {
		return 15
	}
	return 30
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string    `json:"full_name" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

type Material struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	FileType      string    `json:"file_type"`
	ExtractedText string    `json:"extracted_text" gorm:"type:text"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

type Quiz struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	MaterialID string     `json:"material_id" gorm:"index"`
	UserID     string     `json:"user_id" gorm:"index"`
	Title      string     `json:"title"`
	QuizType   QuizType   `json:"quiz_type"`
	TimeLimit  int        `json:"time_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	Questions  []Question `json:"questions" gorm:"foreignKey:QuizID"`
}

// Question rows exist only as children of a Quiz; there is no
// question-level endpoint.
type Question struct {
	ID           string                      `json:"id" gorm:"primaryKey"`
	QuizID       string                      `json:"-" gorm:"index"`
	Question     string                      `json:"question" gorm:"type:text"`
	Options      datatypes.JSONSlice[string] `json:"options,omitempty"`
	Answer       string                      `json:"answer" gorm:"type:text"`
	Explanation  string                      `json:"explanation" gorm:"type:text"`
	QuestionType QuestionType                `json:"question_type"`
}

type Flashcard struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	MaterialID  string    `json:"material_id" gorm:"index"`
	UserID      string    `json:"user_id" gorm:"index"`
	Question    string    `json:"question" gorm:"type:text"`
	Answer      string    `json:"answer" gorm:"type:text"`
	Explanation string    `json:"explanation" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type QuizResponse struct {
	ID          string                               `json:"id" gorm:"primaryKey"`
	QuizID      string                               `json:"quiz_id" gorm:"index"`
	UserID      string                               `json:"user_id" gorm:"index"`
	Answers     datatypes.JSONSlice[SubmittedAnswer] `json:"user_answers"`
	Score       int                                  `json:"score"`
	CompletedAt time.Time                            `json:"completed_at"`
}
