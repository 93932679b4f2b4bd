package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachofazah/Ciu-RedSocial/internal/logging"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/register"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
)

const testSecret = "test-secret"

func newApp(store storage.Store) *fiber.App {
	tr := session.NewTransients(func(string) *register.Form { return register.NewForm(nil) }, time.Second, time.Minute)
	app := fiber.New()
	app.Use(Visitor(VisitorConfig{Secret: testSecret, TTL: time.Hour}))
	app.Use(InjectSession(store, tr, logging.Discard()))

	page := func(c *fiber.Ctx) error { return c.SendString("page " + string(ThemeFrom(c))) }
	for _, path := range []string{"/", "/profile", "/new-post"} {
		app.Get(path, Protected(page))
	}
	app.Get("/login", RedirectIfAuthenticated("/profile", func(c *fiber.Ctx) error { return c.SendString("login") }))
	app.Get("/api/me", RequireAuth(), func(c *fiber.Ctx) error { return c.JSON(UserFrom(c)) })
	app.Get("/whoami", func(c *fiber.Ctx) error { return c.SendString(VisitorIDFrom(c)) })
	return app
}

func visitorCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == utils.VisitorCookieName {
			return ck
		}
	}
	t.Fatalf("no visitor cookie in response")
	return nil
}

func TestVisitorTokenRoundTrip(t *testing.T) {
	tok, err := IssueVisitorToken(testSecret, "0b7c3f40-1d1e-4a8c-9d53-6f0c7c8f2a11", time.Hour)
	require.NoError(t, err)

	id, err := ParseVisitorToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "0b7c3f40-1d1e-4a8c-9d53-6f0c7c8f2a11", id)

	_, err = ParseVisitorToken("other-secret", tok)
	assert.Error(t, err)

	expired, err := IssueVisitorToken(testSecret, "0b7c3f40-1d1e-4a8c-9d53-6f0c7c8f2a11", -time.Minute)
	require.NoError(t, err)
	_, err = ParseVisitorToken(testSecret, expired)
	assert.Error(t, err)
}

func TestVisitorCookieIsStable(t *testing.T) {
	app := newApp(storage.NewMemoryStore(0))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	ck := visitorCookie(t, resp)
	first, _ := io.ReadAll(resp.Body)
	require.NotEmpty(t, first)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(ck)
	resp, err = app.Test(req)
	require.NoError(t, err)
	second, _ := io.ReadAll(resp.Body)
	assert.Equal(t, string(first), string(second))
}

func TestTamperedCookieGetsNewVisitor(t *testing.T) {
	app := newApp(storage.NewMemoryStore(0))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: utils.VisitorCookieName, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "garbage", visitorCookie(t, resp).Value)
}

func TestProtectedRedirectsAnonymous(t *testing.T) {
	app := newApp(storage.NewMemoryStore(0))

	for _, path := range []string{"/", "/profile", "/new-post"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestProtectedRendersForSessionUser(t *testing.T) {
	store := storage.NewMemoryStore(0)
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	ck := visitorCookie(t, resp)
	vid, _ := io.ReadAll(resp.Body)
	require.NoError(t, session.NewHolder(store, string(vid), nil).Login(context.Background(), models.User{ID: 1, NickName: "ana"}))

	for _, path := range []string{"/", "/profile", "/new-post"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(ck)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "page dark", string(body), path)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(ck)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/profile", resp.Header.Get("Location"))
}

func TestRequireAuthReturns401(t *testing.T) {
	app := newApp(storage.NewMemoryStore(0))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"unauthorized"}`, string(body))
}

func TestRequestDeadlineBoundsUserContext(t *testing.T) {
	var seen context.Context
	app := fiber.New()
	app.Use(RequestDeadline(time.Minute))
	app.Get("/", func(c *fiber.Ctx) error {
		seen = c.UserContext()
		dl, ok := seen.Deadline()
		if !ok || time.Until(dl) > time.Minute {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.NotNil(t, seen)
	assert.ErrorIs(t, seen.Err(), context.Canceled)
}

func TestRequestDeadlineExpiresSlowHandler(t *testing.T) {
	app := fiber.New()
	app.Use(RequestDeadline(20 * time.Millisecond))
	app.Get("/", func(c *fiber.Ctx) error {
		select {
		case <-c.UserContext().Done():
			return c.SendStatus(fiber.StatusGatewayTimeout)
		case <-time.After(time.Second):
			return c.SendStatus(fiber.StatusOK)
		}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
}

func TestRequestDeadlineDefaultsWhenUnset(t *testing.T) {
	app := fiber.New()
	app.Use(RequestDeadline(0))
	app.Get("/", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
