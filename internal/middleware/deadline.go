package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DefaultRequestTimeout = 30 * time.Second

// RequestDeadline bounds the handler's user context. Backend calls made
// with c.UserContext() are cancelled once the deadline passes or the
// handler returns.
func RequestDeadline(timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
