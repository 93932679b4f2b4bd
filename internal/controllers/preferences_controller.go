package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
)

// PreferencesHandler serves the theme toggle, the notification banner and the session summary.
type PreferencesHandler struct {
	Transients *session.Transients
}

func NewPreferencesHandler(t *session.Transients) *PreferencesHandler {
	return &PreferencesHandler{Transients: t}
}

// POST /theme
func (h *PreferencesHandler) ToggleTheme(c *fiber.Ctx) error {
	if _, err := middleware.ThemesFrom(c).Toggle(c.UserContext()); err != nil {
		return err
	}
	return seeOther(c, backTo(c, "/"))
}

// POST /notification/dismiss
func (h *PreferencesHandler) DismissNotification(c *fiber.Ctx) error {
	h.Transients.Banner(middleware.VisitorIDFrom(c)).Dismiss()
	return seeOther(c, backTo(c, "/"))
}

// APIToggleTheme godoc
// @Summary      Toggle the theme
// @Description  Flips between light and dark and persists the choice for this visitor.
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/theme [post]
func (h *PreferencesHandler) APIToggleTheme(c *fiber.Ctx) error {
	theme, err := middleware.ThemesFrom(c).Toggle(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "could not save theme"})
	}
	return c.JSON(dto.ThemeResponse{Theme: string(theme), BodyClass: theme.BodyClass()})
}

// Session godoc
// @Summary      Current session
// @Description  Who is logged in for this visitor, and the active theme.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *PreferencesHandler) Session(c *fiber.Ctx) error {
	user := middleware.UserFrom(c)
	return c.JSON(dto.SessionResponse{
		LoggedIn: user != nil,
		User:     user,
		Theme:    string(middleware.ThemeFrom(c)),
	})
}
