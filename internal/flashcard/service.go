package flashcard

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"studymentor/internal/ai"
	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

// Generator produces a batch of flashcards from source text.
type Generator interface {
	GenerateFlashcards(ctx context.Context, text string) ([]ai.GeneratedCard, error)
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

// Generate builds and persists a flashcard batch from the owner's material.
func (s *Service) Generate(ctx context.Context, materialID string, owner *models.User) ([]models.Flashcard, error) {
	material, err := s.materials.Get(materialID, owner)
	if err != nil {
		return nil, err
	}

	generated, err := s.ai.GenerateFlashcards(ctx, material.ExtractedText)
	if err != nil {
		log.Printf("Error generating flashcards for material %s: %v", materialID, err)
		return nil, apperror.Upstream("Error generating flashcards", err)
	}

	cards := make([]models.Flashcard, 0, len(generated))
	now := time.Now().UTC()
	for _, g := range generated {
		cards = append(cards, models.Flashcard{
			ID:          uuid.NewString(),
			MaterialID:  material.ID,
			UserID:      owner.ID,
			Question:    g.Question,
			Answer:      g.Answer,
			Explanation: g.Explanation,
			CreatedAt:   now,
		})
	}

	if err := s.store.CreateFlashcards(cards); err != nil {
		return nil, err
	}

	log.Printf("Created %d flashcards for material %s", len(cards), material.ID)
	return cards, nil
}

func (s *Service) List(materialID string, owner *models.User) ([]models.Flashcard, error) {
	return s.store.ListFlashcards(materialID, owner.ID)
}
