package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/internal/controllers"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
)

func SetupAuth(app *fiber.App, auth *controllers.AuthHandler, reg *controllers.RegisterHandler) {
	app.Get("/login", middleware.RedirectIfAuthenticated("/profile", auth.LoginPage))
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	app.Get("/register", reg.Page)
	app.Post("/register", reg.Submit)
}
