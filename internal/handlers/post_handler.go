package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
	"github.com/pawsconnect/backend/internal/visibility"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	petRepository  repositories.PetRepository
	checker        *visibility.Checker
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, petRepo repositories.PetRepository, checker *visibility.Checker) *PostHandler {
	return &PostHandler{postRepository: postRepo, petRepository: petRepo, checker: checker}
}

// RegisterPostRoutes registers authenticated post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.GET("/users/:id/posts", h.GetPostsByAuthor)
}

// RegisterPublicPostRoutes registers routes readable without an account.
// Visibility is still enforced per post; anonymous viewers only ever see
// public posts.
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Tagged pets must exist; tagging is open to any user's pets.
	for _, petID := range req.TaggedPetIDs {
		if _, err := h.petRepository.GetPetByID(petID); err != nil {
			return toHTTPError(err)
		}
	}

	post := &models.Post{
		AuthorID:     viewerID,
		Content:      req.Content,
		PhotoURL:     req.PhotoURL,
		Visibility:   req.Visibility,
		TaggedPetIDs: req.TaggedPetIDs,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post, guarded by the visibility check.
func (h *PostHandler) GetPost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	ok, err := h.checker.CanView(viewerID, post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		// Reported as absent rather than forbidden so the check leaks
		// nothing about friends-only content.
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// GetPostsByAuthor lists an author's active posts, filtered to those the
// viewer may see.
func (h *PostHandler) GetPostsByAuthor(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit := pagination(c)
	skip := int64((page - 1) * limit)

	posts, err := h.postRepository.GetPostsByAuthor(c.Request().Context(), uint(authorID), skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	viewable := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		ok, err := h.checker.CanView(viewerID, &p)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if ok {
			viewable = append(viewable, p)
		}
	}
	return c.JSON(http.StatusOK, viewable)
}

// UpdatePost edits a post; only the owner may update.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	id := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if post.AuthorID != viewerID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may edit a post")
	}

	if req.Content != "" {
		post.Content = req.Content
	}
	if req.PhotoURL != "" {
		post.PhotoURL = req.PhotoURL
	}
	if req.Visibility != "" {
		post.Visibility = req.Visibility
	}
	if req.TaggedPetIDs != nil {
		post.TaggedPetIDs = req.TaggedPetIDs
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), id, post); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost soft-deletes a post; only the owner may delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	id := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if post.AuthorID != viewerID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may delete a post")
	}

	if err := h.postRepository.SoftDeletePost(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
