package repositories

import (
	"testing"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSendFriendRequest(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, models.FriendshipPending, fr.Status)
	require.Equal(t, alice.ID, fr.FromUserID)
	require.Equal(t, bob.ID, fr.ToUserID)
}

func TestSendFriendRequestToSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")

	_, err := repo.SendFriendRequest(alice.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrSelfRequest)
}

func TestSendFriendRequestDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// Pending edge blocks a resend.
	_, err = repo.SendFriendRequest(alice.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)

	// Accepted edge blocks it too.
	_, err = repo.Accept(fr.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.SendFriendRequest(alice.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)
}

func TestSendFriendRequestAfterRejection(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Reject(fr.ID, bob.ID)
	require.NoError(t, err)

	// The rejected edge still occupies the direction until deleted.
	_, err = repo.SendFriendRequest(alice.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)

	require.NoError(t, repo.DeleteFriendship(fr.ID, alice.ID))
	_, err = repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestAcceptFriendRequest(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	accepted, err := repo.Accept(fr.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, models.FriendshipAccepted, accepted.Status)

	ok, err := repo.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAcceptIsTerminal(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Accept(fr.ID, bob.ID)
	require.NoError(t, err)

	// Accepted and rejected are terminal states.
	_, err = repo.Accept(fr.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrInvalidState)
	_, err = repo.Reject(fr.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestAcceptByWrongActor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// Neither the sender nor a third party may respond.
	_, err = repo.Accept(fr.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = repo.Accept(fr.ID, carol.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestAcceptMissingFriendship(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	bob := createTestUser(t, db, "bob")

	_, err := repo.Accept(12345, bob.ID)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAreFriendsIsDirectionless(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// Pending grants nothing in either direction.
	ok, err := repo.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = repo.Accept(fr.ID, bob.ID)
	require.NoError(t, err)

	ok, err = repo.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.AreFriends(bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGetPendingRequestsFor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.SendFriendRequest(alice.ID, carol.ID)
	require.NoError(t, err)
	fr, err := repo.SendFriendRequest(bob.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Accept(fr.ID, carol.ID)
	require.NoError(t, err)

	pending, err := repo.GetPendingRequestsFor(carol.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, alice.ID, pending[0].FromUserID)
}

func TestGetFriendIDsAndGetFriends(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	dave := createTestUser(t, db, "dave")

	// alice -> bob accepted, carol -> alice accepted, alice -> dave pending.
	fr1, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Accept(fr1.ID, bob.ID)
	require.NoError(t, err)
	fr2, err := repo.SendFriendRequest(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Accept(fr2.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.SendFriendRequest(alice.ID, dave.ID)
	require.NoError(t, err)

	ids, err := repo.GetFriendIDs(alice.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)

	friends, err := repo.GetFriends(alice.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, f.Username)
	}
	require.ElementsMatch(t, []string{"bob", "carol"}, names)
}

func TestDeleteFriendship(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFriendshipRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	fr, err := repo.SendFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Accept(fr.ID, bob.ID)
	require.NoError(t, err)

	err = repo.DeleteFriendship(fr.ID, carol.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)

	// Either party may unfriend.
	require.NoError(t, repo.DeleteFriendship(fr.ID, bob.ID))

	ok, err := repo.AreFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, ok)

	err = repo.DeleteFriendship(fr.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
