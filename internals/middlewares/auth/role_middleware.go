package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles rejects the request unless the token role is one of the given.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if role == "" {
			return fiber.NewError(fiber.StatusForbidden, "Role not found in token")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied for role "+role)
		}
		return c.Next()
	}
}

// RoleFromLocals reads the role hydrated by AuthJWT.
func RoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

// UserIDFromLocals reads the user id hydrated by AuthJWT.
func UserIDFromLocals(c *fiber.Ctx) string {
	id, _ := c.Locals(LocUserID).(string)
	return id
}
