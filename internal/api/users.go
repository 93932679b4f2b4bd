package api

import (
	"context"
	"net/http"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type CreateUserRequest struct {
	NickName string `json:"nickName"`
	Email    string `json:"email"`
}

// GET /users
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, opListUsers, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// POST /users
func (c *Client) CreateUser(ctx context.Context, nickName, email string) (*models.User, error) {
	var user models.User
	req := CreateUserRequest{NickName: nickName, Email: email}
	if err := c.do(ctx, opCreateUser, http.MethodPost, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
