package dto

import "github.com/nachofazah/Ciu-RedSocial/internal/models"

type LoginForm struct {
	NickName string `form:"nickName" json:"nickName" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegisterForm struct {
	NickName string `form:"nickName" json:"nickName"`
	Email    string `form:"email" json:"email"`
}

type SessionResponse struct {
	LoggedIn bool         `json:"loggedIn" example:"true"`
	User     *models.User `json:"user,omitempty"`
	Theme    string       `json:"theme" example:"dark"`
}

type ThemeResponse struct {
	Theme     string `json:"theme" example:"light"`
	BodyClass string `json:"bodyClass" example:"light-mode"`
}

type RegisterStateResponse struct {
	State    string            `json:"state" example:"invalid"`
	Values   map[string]string `json:"values"`
	Errors   map[string]string `json:"errors,omitempty"`
	APIError string            `json:"apiError,omitempty"`
}
