package models

import "time"

// PetType enumerates the supported species.
type PetType string

const (
	PetTypeDog     PetType = "dog"
	PetTypeCat     PetType = "cat"
	PetTypeBird    PetType = "bird"
	PetTypeReptile PetType = "reptile"
	PetTypeOther   PetType = "other"
)

// Pet is a pet profile (PostgreSQL). Ownership is reassignable only through
// an approved PetTransferRequest.
type Pet struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	Name        string    `json:"name" gorm:"size:100;index"`
	PetType     PetType   `json:"pet_type" gorm:"type:varchar(20);default:'other'"`
	Breed       string    `json:"breed" gorm:"size:100"`
	Color       string    `json:"color" gorm:"size:50"`
	Age         *int      `json:"age,omitempty"` // nil when unknown
	Description string    `json:"description" gorm:"size:500"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePetRequest defines the request body for registering a pet
type CreatePetRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	PetType     PetType `json:"pet_type" validate:"required,oneof=dog cat bird reptile other"`
	Breed       string  `json:"breed,omitempty" validate:"omitempty,max=100"`
	Color       string  `json:"color,omitempty" validate:"omitempty,max=50"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,min=0,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdatePetRequest defines the request body for editing a pet profile
type UpdatePetRequest struct {
	Name        string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PetType     PetType `json:"pet_type,omitempty" validate:"omitempty,oneof=dog cat bird reptile other"`
	Breed       string  `json:"breed,omitempty" validate:"omitempty,max=100"`
	Color       string  `json:"color,omitempty" validate:"omitempty,max=50"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,min=0,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PetSearchParams narrows a pet search; zero values impose no constraint.
type PetSearchParams struct {
	ID    uint
	Name  string
	Breed string
	Age   *int
}
