package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type authClaims struct {
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// ResolveIdentity populates user_id, role and company_id Locals from a
// Bearer token, falling back to the x-user-id / x-user-role / x-company-id
// headers set by the gateway. Requests with neither pass through anonymous;
// RequireRole rejects them later.
func ResolveIdentity(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			tokenStr := strings.TrimSpace(auth[7:])
			var claims authClaims

			token, err := jwt.ParseWithClaims(
				tokenStr,
				&claims,
				func(t *jwt.Token) (any, error) {
					if t.Method != jwt.SigningMethodHS256 {
						return nil, fiber.ErrUnauthorized
					}
					return []byte(jwtSecret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			if claims.Subject == "" {
				return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
			}

			c.Locals("user_id", claims.Subject)
			c.Locals("role", claims.Role)
			c.Locals("company_id", claims.CompanyID)
			return c.Next()
		}

		if uid := strings.TrimSpace(c.Get("x-user-id")); uid != "" {
			c.Locals("user_id", uid)
			c.Locals("role", strings.TrimSpace(c.Get("x-user-role")))
			c.Locals("company_id", strings.TrimSpace(c.Get("x-company-id")))
		}
		return c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and authenticated
// requests whose role is not in the allow list with 403. An empty allow
// list only requires authentication.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if len(roles) == 0 {
			return c.Next()
		}
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "forbidden")
	}
}
