package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility controls who may see a post.
type Visibility string

const (
	// VisibilityPublic posts are readable by anyone, including anonymous viewers.
	VisibilityPublic Visibility = "public"
	// VisibilityFriendsOnly posts are readable by the author and accepted friends.
	VisibilityFriendsOnly Visibility = "friends_only"
)

// Post is a social post stored in MongoDB. AuthorID is the numeric user ID
// from PostgreSQL so feed clauses can join against the friendship table.
// Deletion is soft: is_active flips to false and the row stays.
type Post struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID     uint               `json:"author_id" bson:"author_id"`
	Content      string             `json:"content" bson:"content"`
	PhotoURL     string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Visibility   Visibility         `json:"visibility" bson:"visibility"`
	TaggedPetIDs []uint             `json:"tagged_pet_ids,omitempty" bson:"tagged_pet_ids,omitempty"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content      string     `json:"content" validate:"required,min=1,max=2000"`
	PhotoURL     string     `json:"photo_url,omitempty" validate:"omitempty,url"`
	Visibility   Visibility `json:"visibility" validate:"required,oneof=public friends_only"`
	TaggedPetIDs []uint     `json:"tagged_pet_ids,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Content      string     `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	PhotoURL     string     `json:"photo_url,omitempty" validate:"omitempty,url"`
	Visibility   Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=public friends_only"`
	TaggedPetIDs []uint     `json:"tagged_pet_ids,omitempty"`
}
