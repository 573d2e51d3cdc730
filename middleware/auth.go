package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RoleHeader carries the role claims the upstream identity layer has
// already verified for the caller, comma separated. This service
// never issues or validates tokens itself.
const RoleHeader = "X-Auth-Roles"

// RequireRole rejects the request before the handler body runs unless
// the forwarded claims contain the given role.
func RequireRole(role string, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Get(RoleHeader)
		if claims == "" {
			log.Warnf("Middleware: missing role claims for %s %s", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization required",
			})
		}

		for _, claim := range strings.Split(claims, ",") {
			if strings.TrimSpace(claim) == role {
				return c.Next()
			}
		}

		log.Warnf("Middleware: caller lacks %q role for %s %s", role, c.Method(), c.Path())
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role",
		})
	}
}
