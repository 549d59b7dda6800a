package auth

import (
	"errors"
	"log/slog"
	"strings"

	"bloodbank-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserNameKey = "user_name"
	CtxUserRoleKey = "user_role"
	CtxLocationKey = "location_code"
)

var (
	ErrSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken  = errors.New("invalid token")
)

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header missing")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization format must be 'Bearer <token>'")
	}
	return parts[1], nil
}

func setLocals(c *fiber.Ctx, claims *JWTCustomClaims) {
	c.Locals(CtxUserIDKey, claims.UserID)
	c.Locals(CtxUserNameKey, claims.Name)
	c.Locals(CtxUserRoleKey, claims.Role)
	c.Locals(CtxLocationKey, claims.LocationCode)
}

func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		setLocals(c, claims)
		return c.Next()
	}
}

// OptionalJWT: geçerli token varsa kullanıcıyı locals'a yazar, yoksa (eksik, bozuk
// veya süresi dolmuş) isteği anonim geçirir. Reddetme sadece JWTMiddleware'de.
func OptionalJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		tokenStr, err := bearerToken(c)
		if err != nil {
			slog.Debug("ignoring malformed authorization header", "path", c.Path())
			return c.Next()
		}
		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			slog.Debug("ignoring invalid token, continuing anonymously", "path", c.Path(), "err", err)
			return c.Next()
		}
		setLocals(c, claims)
		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Role information missing")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "You are not allowed to perform this action")
	}
}

// Actor: audit log için istek sahibinin id ve adı (anonimse 0, "")
func Actor(c *fiber.Ctx) (uint, string) {
	userID, _ := c.Locals(CtxUserIDKey).(uint)
	name, _ := c.Locals(CtxUserNameKey).(string)
	return userID, name
}
