package repositories

import (
	"testing"

	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	first := &models.Notification{
		RecipientID: alice.ID,
		ActorID:     bob.ID,
		Type:        models.NotificationFriendRequest,
		Message:     "bob sent you a friend request",
	}
	require.NoError(t, repo.CreateNotification(first))
	second := &models.Notification{
		RecipientID: alice.ID,
		ActorID:     bob.ID,
		Type:        models.NotificationFriendAccepted,
		Message:     "bob accepted your friend request",
	}
	require.NoError(t, repo.CreateNotification(second))

	got, err := repo.GetNotificationsFor(alice.ID, 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].IsRead)

	// MarkRead is scoped to the recipient.
	require.NoError(t, repo.MarkRead(first.ID, bob.ID))
	got, err = repo.GetNotificationsFor(alice.ID, 50)
	require.NoError(t, err)
	for _, n := range got {
		assert.False(t, n.IsRead)
	}

	require.NoError(t, repo.MarkAllRead(alice.ID))
	got, err = repo.GetNotificationsFor(alice.ID, 50)
	require.NoError(t, err)
	for _, n := range got {
		assert.True(t, n.IsRead)
	}
}
