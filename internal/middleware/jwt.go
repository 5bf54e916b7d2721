package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// JWTAuth validates a bearer access token and stores the caller's user id in
// request locals. Token issuance happens elsewhere; this side only verifies.
func JWTAuth(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" {
			return fiber.NewError(http.StatusUnauthorized, "token carries no user identity")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
