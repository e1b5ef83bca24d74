package visibility

import (
	"testing"

	"github.com/pawsconnect/backend/internal/models"
	"github.com/stretchr/testify/require"
)

// fakeFriendships answers AreFriends from a fixed set of accepted pairs.
type fakeFriendships struct {
	accepted map[[2]uint]bool
}

func (f *fakeFriendships) AreFriends(a, b uint) (bool, error) {
	return f.accepted[[2]uint{a, b}] || f.accepted[[2]uint{b, a}], nil
}

func newFakeFriendships(pairs ...[2]uint) *fakeFriendships {
	f := &fakeFriendships{accepted: make(map[[2]uint]bool)}
	for _, p := range pairs {
		f.accepted[p] = true
	}
	return f
}

func TestCanViewPublicPost(t *testing.T) {
	checker := NewChecker(newFakeFriendships())
	post := &models.Post{AuthorID: 1, Visibility: models.VisibilityPublic}

	for _, viewer := range []uint{AnonymousViewer, 1, 2, 99} {
		ok, err := checker.CanView(viewer, post)
		require.NoError(t, err)
		require.True(t, ok, "public post should be visible to viewer %d", viewer)
	}
}

func TestCanViewFriendsOnlyPost(t *testing.T) {
	// 1 and 2 are accepted friends; the edge was stored as 2 -> 1 to prove
	// direction does not matter.
	checker := NewChecker(newFakeFriendships([2]uint{2, 1}))
	post := &models.Post{AuthorID: 1, Visibility: models.VisibilityFriendsOnly}

	tests := []struct {
		name   string
		viewer uint
		want   bool
	}{
		{"owner", 1, true},
		{"accepted friend", 2, true},
		{"stranger", 3, false},
		{"anonymous", AnonymousViewer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := checker.CanView(tt.viewer, post)
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestCanViewPendingRequestIsNotFriendship(t *testing.T) {
	// No accepted edges at all; a pending request grants nothing.
	checker := NewChecker(newFakeFriendships())
	post := &models.Post{AuthorID: 1, Visibility: models.VisibilityFriendsOnly}

	ok, err := checker.CanView(2, post)
	require.NoError(t, err)
	require.False(t, ok)
}
