package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/internal/controllers"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
)

func SetupRoutesFeed(app *fiber.App, h *controllers.FeedHandler) {
	app.Get("/", middleware.Protected(h.Home))
	app.Get("/profile", middleware.Protected(h.Profile))
}

func SetupRoutesPost(app *fiber.App, h *controllers.PostHandler) {
	app.Get("/new-post", middleware.Protected(h.NewPostPage))
	app.Post("/new-post", middleware.Protected(h.CreatePost))

	post := app.Group("/post")
	post.Get("/:id", h.Detail)
	post.Post("/:id/comments", h.Comment)
}

func SetupRoutesPreferences(app *fiber.App, h *controllers.PreferencesHandler) {
	app.Post("/theme", h.ToggleTheme)
	app.Post("/notification/dismiss", h.DismissNotification)
}
