package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/feed"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type FeedHandler struct {
	Backend    Backend
	Aggregator *feed.Aggregator
	View       *Renderer
}

func NewFeedHandler(b Backend, agg *feed.Aggregator, view *Renderer) *FeedHandler {
	return &FeedHandler{Backend: b, Aggregator: agg, View: view}
}

// GET /
func (h *FeedHandler) Home(c *fiber.Ctx) error {
	posts, err := h.Backend.ListPosts(c.UserContext())
	if err != nil {
		h.View.Log.WithError(err).Warn("home: list posts failed")
		return h.View.Render(c, statusFor(err), "home", "Home", fiber.Map{
			"Entries": []feed.Entry{},
			"Error":   api.UserMessage(err),
		})
	}
	return h.View.Render(c, fiber.StatusOK, "home", "Home", fiber.Map{
		"Entries": h.Aggregator.Load(c.UserContext(), posts),
		"Error":   "",
	})
}

// GET /profile
func (h *FeedHandler) Profile(c *fiber.Ctx) error {
	user := middleware.UserFrom(c)
	posts, err := h.Backend.ListPostsByUser(c.UserContext(), user.ID)
	if err != nil {
		h.View.Log.WithError(err).WithField("user_id", user.ID).Warn("profile: list posts failed")
		return h.View.Render(c, statusFor(err), "profile", "Profile", fiber.Map{
			"Entries":   []feed.Entry{},
			"PostCount": 0,
			"Error":     api.UserMessage(err),
		})
	}
	return h.View.Render(c, fiber.StatusOK, "profile", "Profile", fiber.Map{
		"Entries":   h.Aggregator.Load(c.UserContext(), posts),
		"PostCount": len(posts),
		"Error":     "",
	})
}

// Feed godoc
// @Summary      Aggregated feed
// @Description  Posts newest first with comment counts and image URLs. With userId, only that user's posts.
// @Tags         feed
// @Produce      json
// @Param        userId  query     int  false  "Author id"
// @Success      200     {object}  dto.FeedResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/feed [get]
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	var (
		posts []models.Post
		err   error
	)
	if uid := c.QueryInt("userId", 0); uid > 0 {
		posts, err = h.Backend.ListPostsByUser(c.UserContext(), uid)
	} else {
		posts, err = h.Backend.ListPosts(c.UserContext())
	}
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Message: api.UserMessage(err)})
	}

	entries := h.Aggregator.Load(c.UserContext(), posts)
	items := make([]dto.FeedPost, 0, len(entries))
	for _, e := range entries {
		images := e.ImageURLs
		if images == nil {
			images = []string{}
		}
		items = append(items, dto.FeedPost{
			ID:            e.Post.ID,
			Author:        e.Post.AuthorNickName(),
			Description:   e.Post.Description,
			Tags:          e.Post.TagNames(),
			CreatedAt:     e.Post.CreatedAt,
			CommentsCount: e.CommentsCount,
			ImageURLs:     images,
		})
	}
	return c.JSON(dto.FeedResponse{Items: items, Count: len(items)})
}
