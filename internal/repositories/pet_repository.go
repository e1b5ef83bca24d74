package repositories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/gorm"
)

// PetRepository defines the interface for pet data operations
type PetRepository interface {
	CreatePet(pet *models.Pet) error
	GetPetByID(id uint) (*models.Pet, error)
	GetPetBySlug(slug string) (*models.Pet, error)
	GetPetsByOwner(ownerID uint) ([]models.Pet, error)
	UpdatePet(pet *models.Pet) error
	DeletePet(id uint) error
	SearchPets(params models.PetSearchParams) ([]models.Pet, error)
}

// PostgresPetRepository implements PetRepository for PostgreSQL
type PostgresPetRepository struct {
	db *gorm.DB
}

// NewPostgresPetRepository creates a new PostgresPetRepository
func NewPostgresPetRepository(db *gorm.DB) *PostgresPetRepository {
	return &PostgresPetRepository{db: db}
}

// CreatePet creates a new pet, generating a slug from its name.
func (r *PostgresPetRepository) CreatePet(pet *models.Pet) error {
	if pet.Slug == "" {
		pet.Slug = petSlug(pet.Name)
	}
	return r.db.Create(pet).Error
}

// petSlug builds a URL-safe slug; the uuid suffix keeps same-named pets unique.
func petSlug(name string) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return base + "-" + uuid.NewString()[:8]
}

// GetPetByID retrieves a pet by ID
func (r *PostgresPetRepository) GetPetByID(id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("pet", id)
		}
		return nil, err
	}
	return &pet, nil
}

// GetPetBySlug retrieves a pet by slug
func (r *PostgresPetRepository) GetPetBySlug(slug string) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.Where("slug = ?", slug).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("pet", slug)
		}
		return nil, err
	}
	return &pet, nil
}

// GetPetsByOwner retrieves all pets owned by a user
func (r *PostgresPetRepository) GetPetsByOwner(ownerID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Where("owner_id = ?", ownerID).Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// UpdatePet updates an existing pet
func (r *PostgresPetRepository) UpdatePet(pet *models.Pet) error {
	return r.db.Save(pet).Error
}

// DeletePet deletes a pet by ID
func (r *PostgresPetRepository) DeletePet(id uint) error {
	return r.db.Delete(&models.Pet{}, id).Error
}

// SearchPets filters pets by ID, name and breed substring, and exact age.
// Absent parameters impose no constraint.
func (r *PostgresPetRepository) SearchPets(params models.PetSearchParams) ([]models.Pet, error) {
	q := r.db.Model(&models.Pet{})
	if params.ID != 0 {
		q = q.Where("id = ?", params.ID)
	}
	if params.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+params.Name+"%")
	}
	if params.Breed != "" {
		q = q.Where("LOWER(breed) LIKE LOWER(?)", "%"+params.Breed+"%")
	}
	if params.Age != nil {
		q = q.Where("age = ?", *params.Age)
	}

	var pets []models.Pet
	if err := q.Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}
