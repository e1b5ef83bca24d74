package middleware

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/models"
)

// userByFirebaseUID is the single account lookup the Firebase fallback needs.
type userByFirebaseUID interface {
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
}

// FirebaseAuthMiddleware authenticates protected routes when Firebase is
// configured. A local JWT is accepted as usual; failing that, the bearer
// token is verified as a Firebase ID token and resolved to the linked
// account, so Firebase clients can call the API without exchanging tokens
// through /firebase-login first.
func FirebaseAuthMiddleware(authClient *auth.Client, users userByFirebaseUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing or malformed Authorization header")
			}

			if claims, err := parseClaims(tokenString); err == nil {
				c.Set("user", claims)
				return next(c)
			}

			if authClient == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			token, err := authClient.VerifyIDToken(c.Request().Context(), tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			user, err := users.GetUserByFirebaseUID(token.UID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "No account linked to this Firebase user")
			}

			c.Set("user", &models.JwtCustomClaims{UserID: user.ID, Email: user.Email})
			return next(c)
		}
	}
}
