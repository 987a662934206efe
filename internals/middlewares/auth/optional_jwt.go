package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "wedding_backend/internals/helpers"
	helperAuth "wedding_backend/internals/helpers/auth"
)

// OptionalAuthJWT hydrates Locals(user_id) from a valid session token and
// otherwise lets the request through untouched. Nothing is rejected here.
func OptionalAuthJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return c.Next()
		}
		if userID, err := helperAuth.ParseSessionToken(secret, raw); err == nil {
			c.Locals(helper.LocUserID, userID.String())
		}
		return c.Next()
	}
}
