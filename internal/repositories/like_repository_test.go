package repositories

import (
	"testing"

	"github.com/pawsconnect/backend/internal/apperror"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	const postID = "65f1c0ffee0000000000aaaa"

	require.NoError(t, repo.CreateLike(&models.Like{PostID: postID, UserID: alice.ID}))

	err := repo.CreateLike(&models.Like{PostID: postID, UserID: alice.ID})
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)

	liked, err := repo.HasUserLikedPost(postID, alice.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.GetLikesCountByPostID(postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeleteLike(postID, alice.ID))
	err = repo.DeleteLike(postID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrNotFound)

	liked, err = repo.HasUserLikedPost(postID, alice.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}
