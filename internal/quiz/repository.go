package quiz

import (
	"log"

	"gorm.io/gorm"

	"studymentor/internal/models"
)

// Store is the slice of persistence the quiz service needs.
type Store interface {
	CreateQuiz(quiz *models.Quiz) error
	GetQuiz(id, userID string) (*models.Quiz, error)
	SaveResponse(response *models.QuizResponse) error
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateQuiz(quiz *models.Quiz) error {
	if err := r.db.Create(quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return err
	}
	return nil
}

// GetQuiz loads a quiz with its embedded questions, scoped to the owner.
func (r *Repository) GetQuiz(id, userID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.Preload("Questions").
		Where("id = ? AND user_id = ?", id, userID).
		First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *Repository) SaveResponse(response *models.QuizResponse) error {
	return r.db.Create(response).Error
}
