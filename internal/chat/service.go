package chat

import (
	"context"
	"log"

	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

// Asker answers a single question about the given text. The session id
// only tags the call for the provider; no history is kept anywhere.
type Asker interface {
	Ask(ctx context.Context, text, question, sessionID string) (string, error)
}

// Materials loads a material the given user owns.
type Materials interface {
	Get(id string, owner *models.User) (*models.Material, error)
}

type Service struct {
	materials Materials
	ai        Asker
}

func NewService(materials Materials, ai Asker) *Service {
	return &Service{
		materials: materials,
		ai:        ai,
	}
}

// Ask answers a free-text question about the owner's material. Each call
// is a fresh single-turn exchange.
func (s *Service) Ask(ctx context.Context, materialID, question string, owner *models.User) (string, error) {
	material, err := s.materials.Get(materialID, owner)
	if err != nil {
		return "", err
	}

	sessionID := "chat_" + material.ID + "_" + owner.ID
	answer, err := s.ai.Ask(ctx, material.ExtractedText, question, sessionID)
	if err != nil {
		log.Printf("Error answering question for material %s: %v", materialID, err)
		return "", apperror.Upstream("Error processing question", err)
	}
	return answer, nil
}
