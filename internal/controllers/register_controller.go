package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/register"
	"github.com/nachofazah/Ciu-RedSocial/internal/session"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
)

// RegistrationForms builds the per-visitor form factory. A successful
// registration logs the new user in and shows the confirmation banner.
func RegistrationForms(reg register.Registrar, store storage.Store, transients func() *session.Transients, log *logrus.Logger, opts ...register.Option) session.FormFactory {
	return func(visitorID string) *register.Form {
		onSuccess := func(u models.User) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := session.NewHolder(store, visitorID, nil).Login(ctx, u); err != nil {
				log.WithError(err).WithField("visitor_id", visitorID).Warn("auto login after registration failed")
			}
			transients().Banner(visitorID).Show(fmt.Sprintf("User %s registered successfully.", u.NickName))
			log.WithField("user_id", u.ID).Info("user registered")
		}
		all := append([]register.Option{register.WithOnSuccess(onSuccess)}, opts...)
		return register.NewForm(reg, all...)
	}
}

type RegisterHandler struct {
	Transients *session.Transients
	View       *Renderer
}

func NewRegisterHandler(t *session.Transients, view *Renderer) *RegisterHandler {
	return &RegisterHandler{Transients: t, View: view}
}

func (h *RegisterHandler) page(c *fiber.Ctx, status int, snap register.Snapshot) error {
	return h.View.Render(c, status, "register", "Sign up", fiber.Map{"Form": snap})
}

// GET /register
func (h *RegisterHandler) Page(c *fiber.Ctx) error {
	form := h.Transients.Form(middleware.VisitorIDFrom(c))
	return h.page(c, fiber.StatusOK, form.Snapshot())
}

// POST /register
func (h *RegisterHandler) Submit(c *fiber.Ctx) error {
	var body dto.RegisterForm
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}

	form := h.Transients.Form(middleware.VisitorIDFrom(c))
	err := form.Submit(c.UserContext(), register.Values{NickName: body.NickName, Email: body.Email})

	var verr *register.ValidationError
	switch {
	case err == nil:
		return seeOther(c, "/")
	case errors.As(err, &verr):
		return h.page(c, fiber.StatusUnprocessableEntity, form.Snapshot())
	case errors.Is(err, register.ErrBusy):
		return h.page(c, fiber.StatusConflict, form.Snapshot())
	case errors.Is(err, register.ErrClosed):
		return seeOther(c, "/register")
	}
	h.View.Log.WithError(err).Warn("register: create user failed")
	return h.page(c, statusFor(err), form.Snapshot())
}

// State godoc
// @Summary      Registration form state
// @Description  Current state of the visitor's registration form, including transient errors.
// @Tags         register
// @Produce      json
// @Success      200  {object}  dto.RegisterStateResponse
// @Router       /api/register/state [get]
func (h *RegisterHandler) State(c *fiber.Ctx) error {
	snap := h.Transients.Form(middleware.VisitorIDFrom(c)).Snapshot()
	resp := dto.RegisterStateResponse{
		State:    snap.State,
		Values:   map[string]string{"nickName": snap.Values.NickName, "email": snap.Values.Email},
		APIError: snap.APIError,
	}
	if !snap.Errors.Empty() {
		resp.Errors = map[string]string{}
		if snap.Errors.NickName != "" {
			resp.Errors["nickName"] = snap.Errors.NickName
		}
		if snap.Errors.Email != "" {
			resp.Errors["email"] = snap.Errors.Email
		}
	}
	return c.JSON(resp)
}
