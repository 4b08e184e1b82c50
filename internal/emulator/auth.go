package emulator

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "Bearer "

// RequireToken creates fiber middleware that requires the static bearer
// token. An empty token disables the check.
func RequireToken(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			log.Debug().Str("path", c.Path()).Msg("request without bearer token")
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		if subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(header, bearerPrefix)), []byte(token)) != 1 {
			log.Warn().Str("IP", c.IP()).Str("path", c.Path()).Msg("invalid bearer token")
			return fiber.NewError(fiber.StatusForbidden, "invalid bearer token")
		}

		return c.Next()
	}
}
