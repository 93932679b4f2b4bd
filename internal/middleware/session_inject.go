package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
)

const (
	LocalSession = "session"
	LocalUser    = "user"
	LocalTheme   = "theme"
	LocalThemes  = "themes"
)

// InjectSession loads the visitor's session user and theme. It must run after Visitor.
func InjectSession(store storage.Store, transients *session.Transients, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vid := VisitorIDFrom(c)
		if vid == "" {
			return fiber.ErrUnauthorized
		}

		holder := session.NewHolder(store, vid, func() { transients.Release(vid) })
		themes := session.NewThemeHolder(store, vid)

		user, err := holder.Current(c.UserContext())
		if err != nil {
			log.WithError(err).WithField("visitor_id", vid).Warn("session user unavailable")
		}
		theme, err := themes.Current(c.UserContext())
		if err != nil {
			log.WithError(err).WithField("visitor_id", vid).Warn("theme unavailable")
		}

		c.Locals(LocalSession, holder)
		c.Locals(LocalThemes, themes)
		c.Locals(LocalUser, user)
		c.Locals(LocalTheme, theme)
		return c.Next()
	}
}

// UserFrom returns the session user, or nil for anonymous visitors.
func UserFrom(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(LocalUser).(*models.User)
	return u
}

func SessionFrom(c *fiber.Ctx) *session.Holder {
	h, _ := c.Locals(LocalSession).(*session.Holder)
	return h
}

func ThemesFrom(c *fiber.Ctx) *session.ThemeHolder {
	h, _ := c.Locals(LocalThemes).(*session.ThemeHolder)
	return h
}

func ThemeFrom(c *fiber.Ctx) session.Theme {
	if t, ok := c.Locals(LocalTheme).(session.Theme); ok && t != "" {
		return t
	}
	return session.DefaultTheme
}
