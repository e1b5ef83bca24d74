package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipRepository   repositories.FriendshipRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipRepository:   friendshipRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.POST("/friends/request", h.SendFriendRequest)
	g.GET("/friends/requests/pending", h.GetPendingFriendRequests)
	g.PUT("/friends/request/:id/status", h.UpdateFriendRequestStatus)
	g.GET("/friends", h.GetFriends)
	g.DELETE("/friends/:id", h.DeleteFriendship)
}

// SendFriendRequest handles sending a friend request
func (h *FriendshipHandler) SendFriendRequest(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	var req models.CreateFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.ToUserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipient user not found")
	}

	fr, err := h.friendshipRepository.SendFriendRequest(viewerID, req.ToUserID)
	if err != nil {
		return toHTTPError(err)
	}

	h.notify(&models.Notification{
		Type:        models.NotificationFriendRequest,
		ActorID:     viewerID,
		RecipientID: req.ToUserID,
		TargetID:    strconv.FormatUint(uint64(fr.ID), 10),
		Message:     "You have a new friend request",
	})

	return c.JSON(http.StatusCreated, fr)
}

// GetPendingFriendRequests retrieves pending friend requests addressed to the
// authenticated user
func (h *FriendshipHandler) GetPendingFriendRequests(c echo.Context) error {
	requests, err := h.friendshipRepository.GetPendingRequestsFor(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, requests)
}

// UpdateFriendRequestStatus accepts or rejects a friend request. Only the
// recipient may respond, and only while the request is pending.
func (h *FriendshipHandler) UpdateFriendRequestStatus(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	var req models.UpdateFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var fr *models.Friendship
	switch req.Status {
	case models.FriendshipAccepted:
		fr, err = h.friendshipRepository.Accept(uint(requestID), viewerID)
	case models.FriendshipRejected:
		fr, err = h.friendshipRepository.Reject(uint(requestID), viewerID)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Cannot transition to status %q", req.Status))
	}
	if err != nil {
		return toHTTPError(err)
	}

	if fr.Status == models.FriendshipAccepted {
		h.notify(&models.Notification{
			Type:        models.NotificationFriendAccepted,
			ActorID:     viewerID,
			RecipientID: fr.FromUserID,
			TargetID:    strconv.FormatUint(uint64(fr.ID), 10),
			Message:     "Your friend request was accepted",
		})
	}

	return c.JSON(http.StatusOK, fr)
}

// GetFriends retrieves the authenticated user's accepted friends
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	friends, err := h.friendshipRepository.GetFriends(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, friends)
}

// DeleteFriendship removes a friendship edge (unfriend, or withdraw/clear a
// request). Either party may delete.
func (h *FriendshipHandler) DeleteFriendship(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid friendship ID")
	}

	if err := h.friendshipRepository.DeleteFriendship(uint(id), getUserIDFromContext(c)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// notify writes a notification; failures are logged, never surfaced.
func (h *FriendshipHandler) notify(n *models.Notification) {
	if h.notificationRepository == nil {
		return
	}
	if err := h.notificationRepository.CreateNotification(n); err != nil {
		log.Printf("creating %s notification: %v", n.Type, err)
	}
}
