package repositories

import (
	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	CreateNotification(n *models.Notification) error
	GetNotificationsFor(recipientID uint, limit int) ([]models.Notification, error)
	MarkRead(id, recipientID uint) error
	MarkAllRead(recipientID uint) error
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// CreateNotification creates a new notification
func (r *PostgresNotificationRepository) CreateNotification(n *models.Notification) error {
	return r.db.Create(n).Error
}

// GetNotificationsFor retrieves a user's notifications, newest first
func (r *PostgresNotificationRepository) GetNotificationsFor(recipientID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks a single notification as read; scoped to the recipient so a
// user cannot touch someone else's notifications.
func (r *PostgresNotificationRepository) MarkRead(id, recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true).Error
}

// MarkAllRead marks all of a user's notifications as read
func (r *PostgresNotificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
