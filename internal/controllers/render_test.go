package controllers

import (
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, statusFor(&api.NotFoundError{Resource: "post", ID: 3}))
	assert.Equal(t, fiber.StatusConflict, statusFor(&api.RequestError{Status: 409}))
	assert.Equal(t, fiber.StatusBadGateway, statusFor(&api.RequestError{Status: 500}))
	assert.Equal(t, fiber.StatusBadGateway, statusFor(&api.NetworkError{Err: errors.New("dial")}))
}

func TestBackTo(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error { return c.SendString(backTo(c, "/")) })

	cases := map[string]string{
		"/profile":        "/profile",
		"":                "/",
		"//evil.test":     "/",
		"https://evil.io": "/",
		"/\\evil.test":    "/",
	}
	for in, want := range cases {
		form := url.Values{"back": {in}}.Encode()
		req := httptest.NewRequest("POST", "/", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, resp.Body)
		assert.Equal(t, want, buf.String(), in)
	}
}
