package repositories

import (
	"errors"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/gorm"
)

// TransferRepository defines the interface for pet ownership transfers.
// Approval reassigns the pet's owner and flips the request status inside one
// transaction, guarded the same way friendship transitions are.
type TransferRepository interface {
	CreateTransfer(req *models.PetTransferRequest) (*models.PetTransferRequest, error)
	GetTransferByID(id uint) (*models.PetTransferRequest, error)
	GetPendingTransfersFor(userID uint) ([]models.PetTransferRequest, error)
	Approve(id, actorID uint) (*models.PetTransferRequest, error)
	Reject(id, actorID uint) (*models.PetTransferRequest, error)
	Cancel(id, actorID uint) (*models.PetTransferRequest, error)
}

// PostgresTransferRepository implements TransferRepository for PostgreSQL
type PostgresTransferRepository struct {
	db *gorm.DB
}

// NewPostgresTransferRepository creates a new PostgresTransferRepository
func NewPostgresTransferRepository(db *gorm.DB) *PostgresTransferRepository {
	return &PostgresTransferRepository{db: db}
}

// CreateTransfer opens a pending transfer. The sender must own the pet and
// may not transfer to themselves; only one pending transfer may exist per pet.
func (r *PostgresTransferRepository) CreateTransfer(req *models.PetTransferRequest) (*models.PetTransferRequest, error) {
	if req.FromUserID == req.ToUserID {
		return nil, apperror.SelfRequest("cannot transfer a pet to yourself")
	}

	var pet models.Pet
	if err := r.db.First(&pet, req.PetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("pet", req.PetID)
		}
		return nil, err
	}
	if pet.OwnerID != req.FromUserID {
		return nil, apperror.Forbidden("only the owner may transfer a pet")
	}

	var count int64
	err := r.db.Model(&models.PetTransferRequest{}).
		Where("pet_id = ? AND status = ?", req.PetID, models.TransferPending).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.DuplicateRequest("a pending transfer already exists for this pet")
	}

	req.Status = models.TransferPending
	if err := r.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// GetTransferByID retrieves a transfer request by ID
func (r *PostgresTransferRepository) GetTransferByID(id uint) (*models.PetTransferRequest, error) {
	var req models.PetTransferRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("transfer request", id)
		}
		return nil, err
	}
	return &req, nil
}

// GetPendingTransfersFor retrieves pending transfers addressed to a user
func (r *PostgresTransferRepository) GetPendingTransfersFor(userID uint) ([]models.PetTransferRequest, error) {
	var reqs []models.PetTransferRequest
	err := r.db.Where("to_user_id = ? AND status = ?", userID, models.TransferPending).Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// Approve accepts the transfer and reassigns the pet to the recipient.
func (r *PostgresTransferRepository) Approve(id, actorID uint) (*models.PetTransferRequest, error) {
	var req models.PetTransferRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		loaded, err := r.guardedFlip(tx, id, actorID, recipientActs, models.TransferApproved)
		if err != nil {
			return err
		}
		req = *loaded
		return tx.Model(&models.Pet{}).
			Where("id = ?", req.PetID).
			Update("owner_id", req.ToUserID).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Reject declines the transfer; ownership does not change.
func (r *PostgresTransferRepository) Reject(id, actorID uint) (*models.PetTransferRequest, error) {
	var req models.PetTransferRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		loaded, err := r.guardedFlip(tx, id, actorID, recipientActs, models.TransferRejected)
		if err != nil {
			return err
		}
		req = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Cancel withdraws a pending transfer; only the sender may cancel.
func (r *PostgresTransferRepository) Cancel(id, actorID uint) (*models.PetTransferRequest, error) {
	var req models.PetTransferRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		loaded, err := r.guardedFlip(tx, id, actorID, senderActs, models.TransferCanceled)
		if err != nil {
			return err
		}
		req = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

type transferActor int

const (
	recipientActs transferActor = iota
	senderActs
)

// guardedFlip verifies the actor and applies pending -> target as a
// conditional UPDATE; a concurrent transition leaves zero rows matched and
// surfaces as ErrInvalidState.
func (r *PostgresTransferRepository) guardedFlip(tx *gorm.DB, id, actorID uint, who transferActor, target models.TransferStatus) (*models.PetTransferRequest, error) {
	var req models.PetTransferRequest
	if err := tx.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("transfer request", id)
		}
		return nil, err
	}
	switch who {
	case recipientActs:
		if req.ToUserID != actorID {
			return nil, apperror.Forbidden("only the recipient may respond to a transfer request")
		}
	case senderActs:
		if req.FromUserID != actorID {
			return nil, apperror.Forbidden("only the sender may cancel a transfer request")
		}
	}
	res := tx.Model(&models.PetTransferRequest{}).
		Where("id = ? AND status = ?", id, models.TransferPending).
		Update("status", target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperror.InvalidState("transfer request is not pending")
	}
	req.Status = target
	return &req, nil
}
