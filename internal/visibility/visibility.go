// Package visibility decides whether a viewer may see a post.
package visibility

import "github.com/pawsconnect/backend/internal/models"

// AnonymousViewer is the viewer ID used for unauthenticated requests.
const AnonymousViewer uint = 0

// FriendshipChecker is the one lookup CanView needs from the store.
type FriendshipChecker interface {
	AreFriends(userA, userB uint) (bool, error)
}

// Checker evaluates post visibility for a viewer.
type Checker struct {
	friendships FriendshipChecker
}

// NewChecker creates a Checker backed by the given friendship lookup.
func NewChecker(friendships FriendshipChecker) *Checker {
	return &Checker{friendships: friendships}
}

// CanView reports whether viewerID may see post. Public posts are visible to
// everyone, including anonymous viewers. The author always sees their own
// posts. Friends-only posts require an accepted friendship with the author,
// in either direction. No side effects.
func (c *Checker) CanView(viewerID uint, post *models.Post) (bool, error) {
	if post.Visibility == models.VisibilityPublic {
		return true, nil
	}
	if viewerID == AnonymousViewer {
		return false, nil
	}
	if viewerID == post.AuthorID {
		return true, nil
	}
	if post.Visibility == models.VisibilityFriendsOnly {
		return c.friendships.AreFriends(viewerID, post.AuthorID)
	}
	return false, nil
}
