package material

import (
	"gorm.io/gorm"

	"studymentor/internal/models"
)

// Store is the slice of persistence the material service needs. Every read
// is scoped to the owning user.
type Store interface {
	CreateMaterial(material *models.Material) error
	GetMaterial(id, userID string) (*models.Material, error)
	ListMaterials(userID string) ([]models.Material, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateMaterial(material *models.Material) error {
	return r.db.Create(material).Error
}

func (r *Repository) GetMaterial(id, userID string) (*models.Material, error) {
	var material models.Material
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *Repository) ListMaterials(userID string) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.Where("user_id = ?", userID).Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}
