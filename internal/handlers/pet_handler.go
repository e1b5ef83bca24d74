package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
)

// PetHandler handles HTTP requests related to pets
type PetHandler struct {
	petRepository repositories.PetRepository
}

// NewPetHandler creates a new PetHandler
func NewPetHandler(petRepo repositories.PetRepository) *PetHandler {
	return &PetHandler{petRepository: petRepo}
}

// RegisterPetRoutes registers pet-related routes
func (h *PetHandler) RegisterPetRoutes(g *echo.Group) {
	g.POST("/pets", h.CreatePet)
	g.GET("/pets", h.GetOwnPets)
	g.GET("/pets/:id", h.GetPet)
	g.PUT("/pets/:id", h.UpdatePet)
	g.DELETE("/pets/:id", h.DeletePet)
	g.GET("/pets/search", h.SearchPets)
}

// CreatePet registers a pet owned by the authenticated user
func (h *PetHandler) CreatePet(c echo.Context) error {
	var req models.CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet := &models.Pet{
		OwnerID:     getUserIDFromContext(c),
		Name:        req.Name,
		PetType:     req.PetType,
		Breed:       req.Breed,
		Color:       req.Color,
		Age:         req.Age,
		Description: req.Description,
	}

	if err := h.petRepository.CreatePet(pet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, pet)
}

// GetOwnPets lists the authenticated user's pets
func (h *PetHandler) GetOwnPets(c echo.Context) error {
	pets, err := h.petRepository.GetPetsByOwner(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pets)
}

// GetPet retrieves a pet by ID
func (h *PetHandler) GetPet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}
	pet, err := h.petRepository.GetPetByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, pet)
}

// UpdatePet edits a pet profile; only the owner may update.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	var req models.UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.petRepository.GetPetByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	if pet.OwnerID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Only the owner may edit a pet")
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.PetType != "" {
		pet.PetType = req.PetType
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.Color != "" {
		pet.Color = req.Color
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Description != "" {
		pet.Description = req.Description
	}

	if err := h.petRepository.UpdatePet(pet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pet)
}

// DeletePet removes a pet; only the owner may delete.
func (h *PetHandler) DeletePet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	pet, err := h.petRepository.GetPetByID(uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	if pet.OwnerID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Only the owner may delete a pet")
	}

	if err := h.petRepository.DeletePet(pet.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchPets filters pets by id, name, breed and age query params
func (h *PetHandler) SearchPets(c echo.Context) error {
	params := models.PetSearchParams{
		Name:  c.QueryParam("name"),
		Breed: c.QueryParam("breed"),
	}
	if idStr := c.QueryParam("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
		}
		params.ID = uint(id)
	}
	if ageStr := c.QueryParam("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil || age < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid age")
		}
		params.Age = &age
	}

	pets, err := h.petRepository.SearchPets(params)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pets)
}
