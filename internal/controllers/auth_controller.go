package controllers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

const (
	msgLoginMissing  = "Enter your nickname and password."
	msgWrongPassword = "Incorrect password."
	msgUserNotFound  = "User not found."
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AuthHandler simulates login: every account shares one placeholder password.
type AuthHandler struct {
	Users        UserLister
	View         *Renderer
	passwordHash []byte
}

func NewAuthHandler(users UserLister, view *Renderer, placeholderPassword string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{Users: users, View: view, passwordHash: hash}, nil
}

// GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return h.loginPage(c, fiber.StatusOK, "", "")
}

func (h *AuthHandler) loginPage(c *fiber.Ctx, status int, nickName, errMsg string) error {
	return h.View.Render(c, status, "login", "Log in", fiber.Map{
		"NickName": nickName,
		"Error":    errMsg,
	})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return h.loginPage(c, fiber.StatusBadRequest, "", msgLoginMissing)
	}
	form.NickName = strings.TrimSpace(form.NickName)
	if errs := dto.Validate(form); errs != nil {
		return h.loginPage(c, fiber.StatusUnprocessableEntity, form.NickName, msgLoginMissing)
	}

	if bcrypt.CompareHashAndPassword(h.passwordHash, []byte(form.Password)) != nil {
		return h.loginPage(c, fiber.StatusUnauthorized, form.NickName, msgWrongPassword)
	}

	users, err := h.Users.ListUsers(c.UserContext())
	if err != nil {
		h.View.Log.WithError(err).Warn("login: list users failed")
		return h.loginPage(c, statusFor(err), form.NickName, api.UserMessage(err))
	}

	var found *models.User
	for i := range users {
		if users[i].NickName == form.NickName {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return h.loginPage(c, fiber.StatusUnauthorized, form.NickName, msgUserNotFound)
	}

	if err := middleware.SessionFrom(c).Login(c.UserContext(), *found); err != nil {
		return err
	}
	h.View.Log.WithField("user_id", found.ID).Info("user logged in")
	return seeOther(c, "/")
}

// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.SessionFrom(c).Logout(c.UserContext()); err != nil {
		return err
	}
	return seeOther(c, "/")
}
