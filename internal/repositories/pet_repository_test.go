package repositories

import (
	"testing"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPet(t *testing.T, repo PetRepository, ownerID uint, name string) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		OwnerID: ownerID,
		Name:    name,
		PetType: models.PetTypeDog,
	}
	require.NoError(t, repo.CreatePet(pet))
	return pet
}

func TestCreatePetGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPetRepository(db)
	owner := createTestUser(t, db, "alice")

	first := createTestPet(t, repo, owner.ID, "Sir Barks A Lot")
	second := createTestPet(t, repo, owner.ID, "Sir Barks A Lot")

	assert.Contains(t, first.Slug, "sir-barks-a-lot-")
	assert.NotEqual(t, first.Slug, second.Slug)

	got, err := repo.GetPetBySlug(first.Slug)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestGetPetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPetRepository(db)

	_, err := repo.GetPetByID(999)
	require.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = repo.GetPetBySlug("no-such-pet")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPetsByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPetRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestPet(t, repo, alice.ID, "Rex")
	createTestPet(t, repo, alice.ID, "Milo")
	createTestPet(t, repo, bob.ID, "Felix")

	pets, err := repo.GetPetsByOwner(alice.ID)
	require.NoError(t, err)
	assert.Len(t, pets, 2)
}

func TestSearchPets(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPetRepository(db)
	owner := createTestUser(t, db, "alice")

	three := 3
	rex := &models.Pet{OwnerID: owner.ID, Name: "Rex", PetType: models.PetTypeDog, Breed: "Border Collie", Age: &three}
	require.NoError(t, repo.CreatePet(rex))
	seven := 7
	milo := &models.Pet{OwnerID: owner.ID, Name: "Milo", PetType: models.PetTypeCat, Breed: "Tabby", Age: &seven}
	require.NoError(t, repo.CreatePet(milo))

	pets, err := repo.SearchPets(models.PetSearchParams{Name: "rex"})
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].Name)

	pets, err = repo.SearchPets(models.PetSearchParams{Breed: "collie"})
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].Name)

	pets, err = repo.SearchPets(models.PetSearchParams{Age: &seven})
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Milo", pets[0].Name)

	pets, err = repo.SearchPets(models.PetSearchParams{ID: rex.ID})
	require.NoError(t, err)
	require.Len(t, pets, 1)

	// No constraints returns everything.
	pets, err = repo.SearchPets(models.PetSearchParams{})
	require.NoError(t, err)
	assert.Len(t, pets, 2)
}
