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

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	checker           *visibility.Checker
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, checker *visibility.Checker) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo, postRepository: postRepo, checker: checker}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetCommentsByPost)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// viewablePost loads a post and enforces the visibility check; commenting on
// a post you cannot see is indistinguishable from the post not existing.
func (h *CommentHandler) viewablePost(c echo.Context, postID string) (*models.Post, error) {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	ok, err := h.checker.CanView(getUserIDFromContext(c), post)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return post, nil
}

// CreateComment adds a comment to a post the viewer can see
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.viewablePost(c, req.PostID); err != nil {
		return err
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		UserID:  getUserIDFromContext(c),
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPost lists comments on a post the viewer can see
func (h *CommentHandler) GetCommentsByPost(c echo.Context) error {
	postID := c.Param("id")
	if _, err := h.viewablePost(c, postID); err != nil {
		return err
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment edits a comment; only its author may update.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	if comment.UserID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may edit a comment")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment; only its author may delete.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	if comment.UserID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may delete a comment")
	}

	if err := h.commentRepository.DeleteComment(comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
