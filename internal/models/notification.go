package models

import "time"

// Notification types raised by the friendship and transfer workflows.
const (
	NotificationFriendRequest    = "friend_request"
	NotificationFriendAccepted   = "friend_accepted"
	NotificationTransferRequest  = "transfer_request"
	NotificationTransferApproved = "transfer_approved"
)

// Notification represents a user notification (PostgreSQL)
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	TargetID    string    `json:"target_id"` // friendship ID, transfer ID
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
