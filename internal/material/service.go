package material

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"pptx": true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"txt":  true,
}

// Extractor turns a stored file into its textual content.
type Extractor interface {
	ExtractText(ctx context.Context, path, fileType string) (string, error)
}

// FileStore persists raw uploads.
type FileStore interface {
	Save(name string, src io.Reader) (string, error)
}

// Cache is a read-through cache keyed by material id.
type Cache interface {
	GetMaterial(id string) (*models.Material, error)
	SetMaterial(material *models.Material) error
}

type Service struct {
	store Store
	files FileStore
	cache Cache
	ai    Extractor
}

func NewService(store Store, files FileStore, cache Cache, ai Extractor) *Service {
	return &Service{
		store: store,
		files: files,
		cache: cache,
		ai:    ai,
	}
}

// Upload validates the file extension, stores the raw file under a random
// id, extracts its text through the AI gateway, and persists the material.
// If extraction fails the stored file is left behind with no material row.
func (s *Service) Upload(ctx context.Context, owner *models.User, title, filename string, src io.Reader) (*models.Material, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return nil, apperror.BadRequest("File type not supported")
	}

	id := uuid.NewString()
	path, err := s.files.Save(id+"."+ext, src)
	if err != nil {
		log.Printf("Error saving upload %s: %v", filename, err)
		return nil, err
	}

	text, err := s.ai.ExtractText(ctx, path, ext)
	if err != nil {
		log.Printf("Error extracting text from %s: %v", path, err)
		return nil, apperror.Upstream("Error extracting text", err)
	}

	material := &models.Material{
		ID:            id,
		UserID:        owner.ID,
		Title:         title,
		FileType:      ext,
		ExtractedText: text,
		UploadedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateMaterial(material); err != nil {
		log.Printf("Error creating material: %v", err)
		return nil, err
	}

	if err := s.cache.SetMaterial(material); err != nil {
		log.Printf("Error caching material %s: %v", material.ID, err)
	}
	return material, nil
}

func (s *Service) List(owner *models.User) ([]models.Material, error) {
	return s.store.ListMaterials(owner.ID)
}

// Get loads a material the caller owns. A cache hit still goes through the
// owner check so one user can never read another user's material.
func (s *Service) Get(id string, owner *models.User) (*models.Material, error) {
	if cached, err := s.cache.GetMaterial(id); err == nil {
		if cached.UserID != owner.ID {
			return nil, apperror.NotFound("Material not found")
		}
		return cached, nil
	}

	material, err := s.store.GetMaterial(id, owner.ID)
	if err != nil {
		return nil, apperror.NotFound("Material not found")
	}

	if err := s.cache.SetMaterial(material); err != nil {
		log.Printf("Error caching material %s: %v", material.ID, err)
	}
	return material, nil
}
