package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/geocoding"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	geocoder       geocoding.Geocoder
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, geocoder geocoding.Geocoder) *UserHandler {
	return &UserHandler{userRepository: userRepo, geocoder: geocoder}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.DELETE("/profile", h.DeleteUser)
	g.GET("/users/:id", h.GetUser)
}

// GetUser retrieves another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile. An address change
// re-triggers geocoding in the background.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.AboutMe != "" {
		user.AboutMe = req.AboutMe
	}

	addressChanged := false
	if req.City != "" && req.City != user.City {
		user.City = req.City
		addressChanged = true
	}
	if req.State != "" && req.State != user.State {
		user.State = req.State
		addressChanged = true
	}
	if req.ZipCode != "" && req.ZipCode != user.ZipCode {
		user.ZipCode = req.ZipCode
		addressChanged = true
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if addressChanged {
		geocoding.GeocodeAsync(h.geocoder, h.userRepository, user.ID, user.City, user.State, user.ZipCode)
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteUser deletes the authenticated user's profile
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userRepository.DeleteUser(getUserIDFromContext(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchUsers searches users by name and, optionally, by proximity to a
// point. The radius filter applies only when lat, lng and radius are all
// present; omitting any of them yields a text-only search.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	params := repositories.UserSearchParams{Query: c.QueryParam("q")}

	latStr, lngStr, radiusStr := c.QueryParam("lat"), c.QueryParam("lng"), c.QueryParam("radius")
	if latStr != "" && lngStr != "" && radiusStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid latitude")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid longitude")
		}
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid radius")
		}
		params.Origin = &repositories.Coordinate{Latitude: lat, Longitude: lng}
		params.RadiusMiles = &radius
	}

	users, err := h.userRepository.SearchUsers(params)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}
