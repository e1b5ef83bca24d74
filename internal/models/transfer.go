package models

import "time"

// TransferStatus represents the lifecycle state of a pet transfer request.
type TransferStatus string

const (
	TransferPending  TransferStatus = "pending"
	TransferApproved TransferStatus = "approved"
	TransferRejected TransferStatus = "rejected"
	TransferCanceled TransferStatus = "canceled"
)

// PetTransferRequest mediates a change of pet ownership. The recipient
// approves or rejects; the sender may cancel while still pending. Approval
// reassigns the pet's owner in the same transaction as the status flip.
type PetTransferRequest struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	PetID      uint           `json:"pet_id" gorm:"index"`
	FromUserID uint           `json:"from_user_id" gorm:"index"`
	ToUserID   uint           `json:"to_user_id" gorm:"index"`
	Status     TransferStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Message    string         `json:"message,omitempty" gorm:"size:500"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CreateTransferRequest defines the request body for offering a pet to another user
type CreateTransferRequest struct {
	PetID    uint   `json:"pet_id" validate:"required"`
	ToUserID uint   `json:"to_user_id" validate:"required"`
	Message  string `json:"message,omitempty" validate:"omitempty,max=500"`
}
