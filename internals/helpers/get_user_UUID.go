package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocUserID is where the optional bearer middleware stores the token subject.
const LocUserID = "user_id"

// GetUserUUID returns the bearer subject, or uuid.Nil for anonymous callers.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if userIDRaw := c.Locals(LocUserID); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return ParseCanonicalUUID(c.Params(name))
}
