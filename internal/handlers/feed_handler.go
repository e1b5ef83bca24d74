package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pagination reads page/limit query params, applying the default and the
// enforced maximum page size.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository       repositories.PostRepository
	userRepository       repositories.UserRepository
	friendshipRepository repositories.FriendshipRepository
	likeRepository       repositories.LikeRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	friendshipRepo repositories.FriendshipRepository,
	likeRepo repositories.LikeRepository,
) *FeedHandler {
	return &FeedHandler{
		postRepository:       postRepo,
		userRepository:       userRepo,
		friendshipRepository: friendshipRepo,
		likeRepository:       likeRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// EnrichedPost is a post with author info and user-specific flags
type EnrichedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
}

// GetFeed returns the posts visible to the current user, newest first: own
// posts, public posts, and friends-only posts from accepted friends. The
// union is computed by the post store in a single query, so re-querying a
// page recomputes it against current friendships.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	page, limit := pagination(c)
	skip := int64((page - 1) * limit)

	friendIDs, err := h.friendshipRepository.GetFriendIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetFeed(c.Request().Context(), currentUserID, friendIDs, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Resolve authors once per distinct user.
	userMap := make(map[uint]models.UserCompact)
	for _, p := range posts {
		if _, seen := userMap[p.AuthorID]; seen {
			continue
		}
		if user, err := h.userRepository.GetUserByID(p.AuthorID); err == nil {
			userMap[p.AuthorID] = user.ToCompact()
		}
	}

	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		liked, _ := h.likeRepository.HasUserLikedPost(p.ID.Hex(), currentUserID)
		enriched[i] = EnrichedPost{
			Post:    p,
			Author:  userMap[p.AuthorID],
			IsLiked: liked,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": enriched,
		"meta": echo.Map{
			"page":         page,
			"itemsPerPage": limit,
			"hasNextPage":  len(posts) == limit,
		},
	})
}
