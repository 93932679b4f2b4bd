package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
)

const Layout = "layouts/main"

// Renderer fills the layout data every page needs: session user, theme and banner.
type Renderer struct {
	Transients *session.Transients
	Log        *logrus.Logger
}

func NewRenderer(t *session.Transients, log *logrus.Logger) *Renderer {
	return &Renderer{Transients: t, Log: log}
}

func (r *Renderer) Render(c *fiber.Ctx, status int, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	theme := middleware.ThemeFrom(c)
	data["Title"] = title
	data["User"] = middleware.UserFrom(c)
	data["Theme"] = string(theme)
	data["BodyClass"] = theme.BodyClass()
	data["Path"] = c.OriginalURL()
	data["Notification"] = r.Transients.PeekBanner(middleware.VisitorIDFrom(c))
	return c.Status(status).Render(view, data, Layout)
}

func (r *Renderer) NotFound(c *fiber.Ctx, message string) error {
	return r.Render(c, fiber.StatusNotFound, "not_found", "Not found", fiber.Map{"Message": message})
}

// NotFoundPage is the catch-all route.
func (r *Renderer) NotFoundPage(c *fiber.Ctx) error {
	return r.NotFound(c, "")
}

func (r *Renderer) Error(c *fiber.Ctx, status int, message string) error {
	return r.Render(c, status, "error", "Error", fiber.Map{"Status": status, "Message": message})
}

// statusFor maps gateway errors to the status of the page that reports them.
func statusFor(err error) int {
	var reqErr *api.RequestError
	switch {
	case api.IsNotFound(err):
		return fiber.StatusNotFound
	case errors.As(err, &reqErr) && reqErr.Status >= 400 && reqErr.Status < 500:
		return reqErr.Status
	}
	return fiber.StatusBadGateway
}

// backTo returns a same-site path from the "back" form field, or fallback.
func backTo(c *fiber.Ctx, fallback string) string {
	back := c.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") || strings.HasPrefix(back, "/\\") {
		return fallback
	}
	return back
}

func seeOther(c *fiber.Ctx, to string) error {
	return c.Redirect(to, http.StatusSeeOther)
}
