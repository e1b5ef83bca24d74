package models

import "time"

// FriendshipStatus represents the lifecycle state of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipPending is the only creatable initial state.
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipAccepted is terminal; the edge is treated as symmetric for
	// visibility even though only one direction is stored.
	FriendshipAccepted FriendshipStatus = "accepted"
	// FriendshipRejected is terminal.
	FriendshipRejected FriendshipStatus = "rejected"
)

// Friendship is a directed edge from the requesting user to the recipient.
// At most one edge may exist per direction.
type Friendship struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	FromUserID uint             `json:"from_user_id" gorm:"index;uniqueIndex:idx_friendship_direction"`
	ToUserID   uint             `json:"to_user_id" gorm:"index;uniqueIndex:idx_friendship_direction"`
	Status     FriendshipStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	ToUserID uint `json:"to_user_id" validate:"required"`
}

// UpdateFriendRequest defines the request body for accepting/rejecting a friend request
type UpdateFriendRequest struct {
	Status FriendshipStatus `json:"status" validate:"required,oneof=accepted rejected"`
}
