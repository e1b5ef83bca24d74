package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
)

// TransferHandler handles pet ownership transfer requests
type TransferHandler struct {
	transferRepository     repositories.TransferRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferRepo repositories.TransferRepository, userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository) *TransferHandler {
	return &TransferHandler{
		transferRepository:     transferRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterTransferRoutes registers transfer-related routes
func (h *TransferHandler) RegisterTransferRoutes(g *echo.Group) {
	g.POST("/transfers", h.CreateTransfer)
	g.GET("/transfers/pending", h.GetPendingTransfers)
	g.PUT("/transfers/:id/approve", h.ApproveTransfer)
	g.PUT("/transfers/:id/reject", h.RejectTransfer)
	g.PUT("/transfers/:id/cancel", h.CancelTransfer)
}

// CreateTransfer offers one of the authenticated user's pets to another user
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	viewerID := getUserIDFromContext(c)

	var req models.CreateTransferRequest
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

	transfer, err := h.transferRepository.CreateTransfer(&models.PetTransferRequest{
		PetID:      req.PetID,
		FromUserID: viewerID,
		ToUserID:   req.ToUserID,
		Message:    req.Message,
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.notify(&models.Notification{
		Type:        models.NotificationTransferRequest,
		ActorID:     viewerID,
		RecipientID: req.ToUserID,
		TargetID:    strconv.FormatUint(uint64(transfer.ID), 10),
		Message:     "Someone wants to transfer a pet to you",
	})

	return c.JSON(http.StatusCreated, transfer)
}

// GetPendingTransfers lists pending transfers addressed to the authenticated user
func (h *TransferHandler) GetPendingTransfers(c echo.Context) error {
	transfers, err := h.transferRepository.GetPendingTransfersFor(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, transfers)
}

// ApproveTransfer accepts a transfer addressed to the authenticated user and
// reassigns the pet.
func (h *TransferHandler) ApproveTransfer(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	id, err := h.transferID(c)
	if err != nil {
		return err
	}

	transfer, err := h.transferRepository.Approve(id, viewerID)
	if err != nil {
		return toHTTPError(err)
	}

	h.notify(&models.Notification{
		Type:        models.NotificationTransferApproved,
		ActorID:     viewerID,
		RecipientID: transfer.FromUserID,
		TargetID:    strconv.FormatUint(uint64(transfer.ID), 10),
		Message:     "Your pet transfer was approved",
	})

	return c.JSON(http.StatusOK, transfer)
}

// RejectTransfer declines a transfer addressed to the authenticated user
func (h *TransferHandler) RejectTransfer(c echo.Context) error {
	id, err := h.transferID(c)
	if err != nil {
		return err
	}
	transfer, err := h.transferRepository.Reject(id, getUserIDFromContext(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transfer)
}

// CancelTransfer withdraws a transfer the authenticated user sent
func (h *TransferHandler) CancelTransfer(c echo.Context) error {
	id, err := h.transferID(c)
	if err != nil {
		return err
	}
	transfer, err := h.transferRepository.Cancel(id, getUserIDFromContext(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, transfer)
}

func (h *TransferHandler) transferID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid transfer ID")
	}
	return uint(id), nil
}

func (h *TransferHandler) notify(n *models.Notification) {
	if h.notificationRepository == nil {
		return
	}
	if err := h.notificationRepository.CreateNotification(n); err != nil {
		log.Printf("creating %s notification: %v", n.Type, err)
	}
}
