package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type CreateCommentRequest struct {
	PostID   int    `json:"postId"`
	UserID   int    `json:"userId"`
	NickName string `json:"nickName"`
	Text     string `json:"text"`
}

// GET /comments/post/:id. Order is whatever the backend returns.
func (c *Client) ListCommentsByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	path := fmt.Sprintf("/comments/post/%d", postID)
	if err := c.do(ctx, opListComments, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// POST /comments
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, opCreateComment, http.MethodPost, "/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
