package repositories

import (
	"math"

	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/gorm"
)

const earthRadiusMiles = 3958.8

// Coordinate is a geocoded point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// UserSearchParams narrows a user search. Query is a case-insensitive
// substring match on username/display name. The radius filter applies only
// when both Origin and RadiusMiles are set; users without a stored
// coordinate are excluded from radius-filtered results.
type UserSearchParams struct {
	Query       string
	Origin      *Coordinate
	RadiusMiles *float64
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdateCoordinates(id uint, lat, lng float64) error
	DeleteUser(id uint) error
	SearchUsers(params UserSearchParams) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	user.RecomputeProfileIncomplete()
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by Firebase UID
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	user.RecomputeProfileIncomplete()
	return r.db.Save(user).Error
}

// UpdateCoordinates stores a geocoded location for a user. Kept separate
// from UpdateUser so the async geocoder never races a full-profile save.
func (r *PostgresUserRepository) UpdateCoordinates(id uint, lat, lng float64) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{"latitude": lat, "longitude": lng}).Error
}

// DeleteUser deletes a user by ID
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// SearchUsers searches users by name and, optionally, proximity. The text
// filter and coordinate presence run in SQL; the radius comparison runs on
// the returned rows since distance is a per-row computation the relational
// layer does not index here.
func (r *PostgresUserRepository) SearchUsers(params UserSearchParams) ([]models.User, error) {
	q := r.db.Model(&models.User{})
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		q = q.Where("LOWER(username) LIKE LOWER(?) OR LOWER(display_name) LIKE LOWER(?)", pattern, pattern)
	}

	geoFiltered := params.Origin != nil && params.RadiusMiles != nil
	if geoFiltered {
		q = q.Where("latitude IS NOT NULL AND longitude IS NOT NULL")
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	if !geoFiltered {
		return users, nil
	}

	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.HasCoordinate() {
			continue
		}
		d := HaversineMiles(params.Origin.Latitude, params.Origin.Longitude, *u.Latitude, *u.Longitude)
		if d <= *params.RadiusMiles {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(a))
}
