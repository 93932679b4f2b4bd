package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
)

const ThemeKey = "app-theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	DefaultTheme = Dark
)

// ParseTheme maps anything that is not "light" to the default.
func ParseTheme(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return DefaultTheme
}

func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// BodyClass is the class applied to <body>.
func (t Theme) BodyClass() string {
	return string(t) + "-mode"
}

type ThemeHolder struct {
	store     storage.Store
	visitorID string
}

func NewThemeHolder(store storage.Store, visitorID string) *ThemeHolder {
	return &ThemeHolder{store: store, visitorID: visitorID}
}

func (h *ThemeHolder) Current(ctx context.Context) (Theme, error) {
	raw, err := h.store.Get(ctx, h.visitorID, ThemeKey)
	if errors.Is(err, storage.ErrNotFound) {
		return DefaultTheme, nil
	}
	if err != nil {
		return DefaultTheme, fmt.Errorf("load theme: %w", err)
	}
	return ParseTheme(string(raw)), nil
}

func (h *ThemeHolder) Set(ctx context.Context, t Theme) error {
	if err := h.store.Set(ctx, h.visitorID, ThemeKey, []byte(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Toggle flips and persists the theme, returning the new value.
func (h *ThemeHolder) Toggle(ctx context.Context) (Theme, error) {
	cur, err := h.Current(ctx)
	if err != nil {
		return cur, err
	}
	next := cur.Opposite()
	return next, h.Set(ctx, next)
}
