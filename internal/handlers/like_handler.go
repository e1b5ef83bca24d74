package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
	"github.com/pawsconnect/backend/internal/visibility"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	checker        *visibility.Checker
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, checker *visibility.Checker) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo, postRepository: postRepo, checker: checker}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes", h.CreateLike)
	g.DELETE("/likes/:postId", h.DeleteLike)
	g.GET("/posts/:id/likes/count", h.GetLikesCount)
}

// CreateLike likes a post the viewer can see
func (h *LikeHandler) CreateLike(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	var req models.CreateLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), req.PostID)
	if err != nil {
		return toHTTPError(err)
	}
	ok, err := h.checker.CanView(viewerID, post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	like := &models.Like{PostID: req.PostID, UserID: viewerID}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, like)
}

// DeleteLike removes the viewer's like from a post
func (h *LikeHandler) DeleteLike(c echo.Context) error {
	if err := h.likeRepository.DeleteLike(c.Param("postId"), getUserIDFromContext(c)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLikesCount returns the number of likes on a post
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	count, err := h.likeRepository.GetLikesCountByPostID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
