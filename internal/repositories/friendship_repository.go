package repositories

import (
	"errors"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations.
// Accepted friendships are symmetric for visibility, so every lookup checks
// both directions with an OR.
type FriendshipRepository interface {
	SendFriendRequest(fromUserID, toUserID uint) (*models.Friendship, error)
	GetFriendshipByID(id uint) (*models.Friendship, error)
	GetPendingRequestsFor(userID uint) ([]models.Friendship, error)
	Accept(id, actorID uint) (*models.Friendship, error)
	Reject(id, actorID uint) (*models.Friendship, error)
	DeleteFriendship(id, actorID uint) error
	AreFriends(userA, userB uint) (bool, error)
	GetFriendIDs(userID uint) ([]uint, error)
	GetFriends(userID uint) ([]models.User, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// SendFriendRequest creates a pending friendship edge from one user to
// another. Fails with ErrSelfRequest when both sides are the same user and
// with ErrDuplicateRequest when an edge already exists in this direction.
func (r *PostgresFriendshipRepository) SendFriendRequest(fromUserID, toUserID uint) (*models.Friendship, error) {
	if fromUserID == toUserID {
		return nil, apperror.SelfRequest("cannot send a friend request to yourself")
	}

	var existing models.Friendship
	err := r.db.Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).First(&existing).Error
	if err == nil {
		switch existing.Status {
		case models.FriendshipPending:
			return nil, apperror.DuplicateRequest("a pending friend request already exists")
		case models.FriendshipAccepted:
			return nil, apperror.DuplicateRequest("users are already friends")
		default:
			// A rejected edge must be deleted before a new request.
			return nil, apperror.DuplicateRequest("a previous request was rejected; remove it first")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fr := &models.Friendship{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     models.FriendshipPending,
	}
	if err := r.db.Create(fr).Error; err != nil {
		return nil, err
	}
	return fr, nil
}

// GetFriendshipByID retrieves a friendship edge by ID
func (r *PostgresFriendshipRepository) GetFriendshipByID(id uint) (*models.Friendship, error) {
	var fr models.Friendship
	if err := r.db.First(&fr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("friendship", id)
		}
		return nil, err
	}
	return &fr, nil
}

// GetPendingRequestsFor retrieves pending friend requests addressed to a user
func (r *PostgresFriendshipRepository) GetPendingRequestsFor(userID uint) ([]models.Friendship, error) {
	var requests []models.Friendship
	err := r.db.Where("to_user_id = ? AND status = ?", userID, models.FriendshipPending).Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Accept transitions a pending request to accepted. Only the recipient may
// accept, and only while the request is still pending.
func (r *PostgresFriendshipRepository) Accept(id, actorID uint) (*models.Friendship, error) {
	return r.transition(id, actorID, models.FriendshipAccepted)
}

// Reject transitions a pending request to rejected. Same guards as Accept.
func (r *PostgresFriendshipRepository) Reject(id, actorID uint) (*models.Friendship, error) {
	return r.transition(id, actorID, models.FriendshipRejected)
}

// transition applies pending -> target as a single conditional UPDATE keyed
// on the current status, so two concurrent transitions cannot both succeed:
// the loser matches zero rows and observes the terminal state.
func (r *PostgresFriendshipRepository) transition(id, actorID uint, target models.FriendshipStatus) (*models.Friendship, error) {
	var fr models.Friendship
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fr, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("friendship", id)
			}
			return err
		}
		if fr.ToUserID != actorID {
			return apperror.Forbidden("only the recipient may respond to a friend request")
		}
		res := tx.Model(&models.Friendship{}).
			Where("id = ? AND status = ?", id, models.FriendshipPending).
			Update("status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.InvalidState("friend request is not pending")
		}
		fr.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// DeleteFriendship removes an edge. Either party may delete, from any state.
func (r *PostgresFriendshipRepository) DeleteFriendship(id, actorID uint) error {
	fr, err := r.GetFriendshipByID(id)
	if err != nil {
		return err
	}
	if fr.FromUserID != actorID && fr.ToUserID != actorID {
		return apperror.Forbidden("only a party to the friendship may delete it")
	}
	return r.db.Delete(&models.Friendship{}, id).Error
}

// AreFriends reports whether an accepted friendship exists between two users
// in either direction.
func (r *PostgresFriendshipRepository) AreFriends(userA, userB uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("status = ?", models.FriendshipAccepted).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFriendIDs returns the IDs of all accepted friends of a user.
func (r *PostgresFriendshipRepository) GetFriendIDs(userID uint) ([]uint, error) {
	var edges []models.Friendship
	err := r.db.Where("status = ?", models.FriendshipAccepted).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.FromUserID == userID {
			ids = append(ids, e.ToUserID)
		} else {
			ids = append(ids, e.FromUserID)
		}
	}
	return ids, nil
}

// GetFriends retrieves the user records of all accepted friends.
func (r *PostgresFriendshipRepository) GetFriends(userID uint) ([]models.User, error) {
	sent := r.db.Model(&models.Friendship{}).Select("to_user_id").
		Where("from_user_id = ? AND status = ?", userID, models.FriendshipAccepted)
	received := r.db.Model(&models.Friendship{}).Select("from_user_id").
		Where("to_user_id = ? AND status = ?", userID, models.FriendshipAccepted)

	var friends []models.User
	if err := r.db.Where("id IN (?) OR id IN (?)", sent, received).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}
