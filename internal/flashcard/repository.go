package flashcard

import (
	"gorm.io/gorm"

	"studymentor/internal/models"
)

// Store is the slice of persistence the flashcard service needs.
type Store interface {
	CreateFlashcards(cards []models.Flashcard) error
	ListFlashcards(materialID, userID string) ([]models.Flashcard, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFlashcards(cards []models.Flashcard) error {
	return r.db.Create(&cards).Error
}

func (r *Repository) ListFlashcards(materialID, userID string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := r.db.Where("material_id = ? AND user_id = ?", materialID, userID).Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}
