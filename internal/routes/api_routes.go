package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/internal/controllers"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
)

func SetupRoutesAPI(app *fiber.App, feed *controllers.FeedHandler, reg *controllers.RegisterHandler, prefs *controllers.PreferencesHandler) {
	api := app.Group("/api")
	api.Get("/session", prefs.Session)
	api.Post("/theme", prefs.APIToggleTheme)
	api.Get("/register/state", reg.State)
	api.Get("/feed", middleware.RequireAuth(), feed.Feed)
}
