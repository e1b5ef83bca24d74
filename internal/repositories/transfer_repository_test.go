package repositories

import (
	"testing"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTransfer(t *testing.T, repo TransferRepository, petID, from, to uint) *models.PetTransferRequest {
	t.Helper()
	req, err := repo.CreateTransfer(&models.PetTransferRequest{
		PetID:      petID,
		FromUserID: from,
		ToUserID:   to,
	})
	require.NoError(t, err)
	return req
}

func TestCreateTransferGuards(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresTransferRepository(db)
	petRepo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	rex := createTestPet(t, petRepo, alice.ID, "Rex")

	_, err := repo.CreateTransfer(&models.PetTransferRequest{
		PetID: rex.ID, FromUserID: alice.ID, ToUserID: alice.ID,
	})
	require.ErrorIs(t, err, apperror.ErrSelfRequest)

	// Only the owner may offer the pet.
	_, err = repo.CreateTransfer(&models.PetTransferRequest{
		PetID: rex.ID, FromUserID: bob.ID, ToUserID: carol.ID,
	})
	require.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = repo.CreateTransfer(&models.PetTransferRequest{
		PetID: 999, FromUserID: alice.ID, ToUserID: bob.ID,
	})
	require.ErrorIs(t, err, apperror.ErrNotFound)

	openTransfer(t, repo, rex.ID, alice.ID, bob.ID)

	// One pending transfer per pet.
	_, err = repo.CreateTransfer(&models.PetTransferRequest{
		PetID: rex.ID, FromUserID: alice.ID, ToUserID: carol.ID,
	})
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)
}

func TestApproveTransferReassignsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresTransferRepository(db)
	petRepo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	rex := createTestPet(t, petRepo, alice.ID, "Rex")

	req := openTransfer(t, repo, rex.ID, alice.ID, bob.ID)

	approved, err := repo.Approve(req.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferApproved, approved.Status)

	got, err := petRepo.GetPetByID(rex.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.OwnerID)

	// Approval is terminal.
	_, err = repo.Approve(req.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestRejectTransferKeepsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresTransferRepository(db)
	petRepo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	rex := createTestPet(t, petRepo, alice.ID, "Rex")

	req := openTransfer(t, repo, rex.ID, alice.ID, bob.ID)

	rejected, err := repo.Reject(req.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferRejected, rejected.Status)

	got, err := petRepo.GetPetByID(rex.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.OwnerID)
}

func TestTransferActorGuards(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresTransferRepository(db)
	petRepo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	rex := createTestPet(t, petRepo, alice.ID, "Rex")

	req := openTransfer(t, repo, rex.ID, alice.ID, bob.ID)

	// The sender cannot approve or reject their own offer.
	_, err := repo.Approve(req.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = repo.Reject(req.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)

	// The recipient cannot cancel; the sender can.
	_, err = repo.Cancel(req.ID, bob.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)
	canceled, err := repo.Cancel(req.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferCanceled, canceled.Status)

	// Canceled frees the pet for a new transfer.
	openTransfer(t, repo, rex.ID, alice.ID, bob.ID)
}

func TestGetPendingTransfersFor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresTransferRepository(db)
	petRepo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	rex := createTestPet(t, petRepo, alice.ID, "Rex")
	milo := createTestPet(t, petRepo, alice.ID, "Milo")

	openTransfer(t, repo, rex.ID, alice.ID, bob.ID)
	done := openTransfer(t, repo, milo.ID, alice.ID, bob.ID)
	_, err := repo.Reject(done.ID, bob.ID)
	require.NoError(t, err)

	pending, err := repo.GetPendingTransfersFor(bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, rex.ID, pending[0].PetID)
}
