package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/dto"
)

const LoginPath = "/login"

// RequireAuth guards JSON endpoints.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFrom(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
		}
		return c.Next()
	}
}

// Protected renders page for logged-in visitors and sends everybody else to the login page.
func Protected(page fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFrom(c) == nil {
			return c.Redirect(LoginPath, fiber.StatusSeeOther)
		}
		return page(c)
	}
}

// RedirectIfAuthenticated is the inverse guard, used by the login page.
func RedirectIfAuthenticated(to string, page fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFrom(c) != nil {
			return c.Redirect(to, fiber.StatusSeeOther)
		}
		return page(c)
	}
}
