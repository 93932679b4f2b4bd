package api

import (
	"context"
	"net/http"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

// GET /tags
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, opListTags, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
