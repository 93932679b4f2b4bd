package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type CreatePostRequest struct {
	Description string `json:"description"`
	UserID      int    `json:"userId"`
	Tags        []int  `json:"tags"`
}

// Some backend versions answer with the created post, others with {"postId": n}.
type createPostResponse struct {
	ID     int `json:"id"`
	PostID int `json:"postId"`
}

// POST /posts. Returns the id of the new post, needed for image association.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (int, error) {
	if req.Tags == nil {
		req.Tags = []int{}
	}
	var resp createPostResponse
	if err := c.do(ctx, opCreatePost, http.MethodPost, "/posts", req, &resp); err != nil {
		return 0, err
	}
	id := resp.PostID
	if id == 0 {
		id = resp.ID
	}
	if id == 0 {
		return 0, &RequestError{
			Op:      opCreatePost,
			Status:  http.StatusOK,
			Message: genericMessage(opCreatePost),
			Err:     errors.New("response carries no post id"),
		}
	}
	return id, nil
}

// GET /posts
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, opListPosts, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GET /posts?UserId=
func (c *Client) ListPostsByUser(ctx context.Context, userID int) ([]models.Post, error) {
	q := url.Values{"UserId": []string{strconv.Itoa(userID)}}
	var posts []models.Post
	if err := c.do(ctx, opListPostsByUser, http.MethodGet, "/posts?"+q.Encode(), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GET /posts/:id
func (c *Client) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	err := c.do(ctx, opGetPost, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			return nil, &NotFoundError{Resource: "post", ID: id}
		}
		return nil, err
	}
	if post.ID == 0 {
		return nil, &NotFoundError{Resource: "post", ID: id}
	}
	return &post, nil
}
