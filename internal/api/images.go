package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type associateImageRequest struct {
	URL    string `json:"url"`
	PostID int    `json:"postId"`
}

// POST /postimages. The post must already exist.
func (c *Client) AssociatePostImage(ctx context.Context, imageURL string, postID int) (*models.PostImage, error) {
	var img models.PostImage
	req := associateImageRequest{URL: imageURL, PostID: postID}
	if err := c.do(ctx, opAssociatePostImage, http.MethodPost, "/postimages", req, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// GET /postimages/post/:id
func (c *Client) ListPostImages(ctx context.Context, postID int) ([]models.PostImage, error) {
	var images []models.PostImage
	path := fmt.Sprintf("/postimages/post/%d", postID)
	if err := c.do(ctx, opListPostImages, http.MethodGet, path, nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}
