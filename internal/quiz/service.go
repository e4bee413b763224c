package quiz

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"studymentor/internal/ai"
	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

// Generator produces a batch of questions from source text.
type Generator interface {
	GenerateQuiz(ctx context.Context, text string, quizType models.QuizType, questionType models.QuestionType) ([]ai.GeneratedQuestion, error)
}

// Materials loads a material the given user owns.
type Materials interface {
	Get(id string, owner *models.User) (*models.Material, error)
}

type Service struct {
	store     Store
	materials Materials
	ai        Generator
}

func NewService(store Store, materials Materials, ai Generator) *Service {
	return &Service{
		store:     store,
		materials: materials,
		ai:        ai,
	}
}

// Generate builds and persists a quiz from the owner's material. The time
// limit is fixed by question type.
func (s *Service) Generate(ctx context.Context, materialID string, quizType models.QuizType, questionType models.QuestionType, owner *models.User) (*models.Quiz, error) {
	material, err := s.materials.Get(materialID, owner)
	if err != nil {
		return nil, err
	}

	generated, err := s.ai.GenerateQuiz(ctx, material.ExtractedText, quizType, questionType)
	if err != nil {
		log.Printf("Error generating quiz for material %s: %v", materialID, err)
		return nil, apperror.Upstream("Error generating quiz", err)
	}

	quiz := &models.Quiz{
		ID:         uuid.NewString(),
		MaterialID: material.ID,
		UserID:     owner.ID,
		Title:      fmt.Sprintf("%s - %s Quiz", material.Title, quizType.Title()),
		QuizType:   quizType,
		TimeLimit:  questionType.TimeLimit(),
		CreatedAt:  time.Now().UTC(),
	}
	for _, g := range generated {
		question := models.Question{
			ID:           uuid.NewString(),
			QuizID:       quiz.ID,
			Question:     g.Question,
			Answer:       g.Answer,
			Explanation:  g.Explanation,
			QuestionType: questionType,
		}
		if questionType == models.QuestionMCQ {
			question.Options = g.Options
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.store.CreateQuiz(quiz); err != nil {
		return nil, err
	}

	log.Printf("Created quiz %s with %d questions", quiz.ID, len(quiz.Questions))
	return quiz, nil
}

// Submit grades a submission against the owner's quiz and persists the
// result. Submissions are one-shot; there is no update path.
func (s *Service) Submit(quizID string, answers []models.SubmittedAnswer, owner *models.User) (*models.QuizResultResponse, error) {
	quiz, err := s.store.GetQuiz(quizID, owner.ID)
	if err != nil {
		return nil, apperror.NotFound("Quiz not found")
	}

	score, correct, total := gradeSubmission(quiz.Questions, answers)

	response := &models.QuizResponse{
		ID:          uuid.NewString(),
		QuizID:      quiz.ID,
		UserID:      owner.ID,
		Answers:     answers,
		Score:       score,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.store.SaveResponse(response); err != nil {
		return nil, err
	}

	return &models.QuizResultResponse{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
	}, nil
}

// gradeSubmission counts a submitted answer as correct when the question's
// canonical answer, case-folded and trimmed, appears as a substring of the
// folded submission. Unknown question ids contribute nothing. Score is
// floor(100 * correct / total).
func gradeSubmission(questions []models.Question, answers []models.SubmittedAnswer) (score, correct, total int) {
	total = len(questions)

	byID := make(map[string]models.Question, total)
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, a := range answers {
		question, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		want := strings.ToLower(strings.TrimSpace(question.Answer))
		got := strings.ToLower(strings.TrimSpace(a.Answer))
		if strings.Contains(got, want) {
			correct++
		}
	}

	if total == 0 {
		return 0, 0, 0
	}
	return correct * 100 / total, correct, total
}
