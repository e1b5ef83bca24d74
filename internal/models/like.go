package models

import "gorm.io/gorm"

// Like marks that a user liked a post; unique per (post, user).
type Like struct {
	gorm.Model
	PostID string `json:"post_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	UserID uint   `json:"user_id" gorm:"index;uniqueIndex:idx_like_post_user"`
}

// CreateLikeRequest defines the request body for liking a post
type CreateLikeRequest struct {
	PostID string `json:"post_id" validate:"required"`
}
