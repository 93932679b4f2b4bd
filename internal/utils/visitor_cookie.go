package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const VisitorCookieName = "as_visitor"

// SetVisitorCookie stores the signed visitor token. An empty token expires the cookie.
func SetVisitorCookie(c *fiber.Ctx, token string, ttl time.Duration, secure bool) {
	if token == "" {
		c.Cookie(&fiber.Cookie{
			Name:     VisitorCookieName,
			Value:    "",
			HTTPOnly: true,
			Secure:   secure,
			SameSite: "Lax",
			MaxAge:   -1,
			Path:     "/",
		})
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     VisitorCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		MaxAge:   int(ttl.Seconds()),
		Path:     "/",
	})
}

func ReadVisitorCookie(c *fiber.Ctx) string {
	return c.Cookies(VisitorCookieName, "")
}
