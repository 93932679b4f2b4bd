package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nachofazah/Ciu-RedSocial/dto"
	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/feed"
	"github.com/nachofazah/Ciu-RedSocial/internal/metrics"
	"github.com/nachofazah/Ciu-RedSocial/internal/middleware"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
)

const (
	msgPostNotFound    = "The post does not exist."
	msgLoginToComment  = "You must log in to comment."
	msgEmptyComment    = "The comment cannot be empty."
	msgTagsUnavailable = "Could not load tags. Try again."
)

type PostHandler struct {
	Backend   Backend
	Profanity *utils.ProfanityFilter
	View      *Renderer
}

func NewPostHandler(b Backend, pf *utils.ProfanityFilter, view *Renderer) *PostHandler {
	return &PostHandler{Backend: b, Profanity: pf, View: view}
}

type postDetail struct {
	Post     *models.Post
	Images   []string
	Comments []models.Comment
	// set when comments could not be loaded
	CommentsErr error
}

// loadDetail fetches the post, then its comments and images in parallel.
// Only a failure on the post itself is returned.
func (h *PostHandler) loadDetail(ctx context.Context, id int) (*postDetail, error) {
	post, err := h.Backend.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &postDetail{Post: post}

	var g errgroup.Group
	g.Go(func() error {
		comments, err := h.Backend.ListCommentsByPost(ctx, id)
		if err != nil {
			d.CommentsErr = err
			metrics.FeedPartialFailure("comments")
			return nil
		}
		feed.SortCommentsOldestFirst(comments)
		for i := range comments {
			comments[i].Text = h.Profanity.Mask(comments[i].Text)
		}
		d.Comments = comments
		return nil
	})
	g.Go(func() error {
		images, err := h.Backend.ListPostImages(ctx, id)
		if err != nil {
			h.View.Log.WithError(err).WithField("post_id", id).Warn("post detail: images unavailable")
			metrics.FeedPartialFailure("images")
			return nil
		}
		for _, img := range images {
			d.Images = append(d.Images, img.URL)
		}
		return nil
	})
	_ = g.Wait()
	return d, nil
}

func (h *PostHandler) renderDetail(c *fiber.Ctx, status int, d *postDetail, text, errMsg string) error {
	if errMsg == "" && d.CommentsErr != nil {
		errMsg = api.UserMessage(d.CommentsErr)
	}
	return h.View.Render(c, status, "post_detail", "Post", fiber.Map{
		"Post":          d.Post,
		"Images":        d.Images,
		"Comments":      d.Comments,
		"CommentsCount": len(d.Comments),
		"Text":          text,
		"Error":         errMsg,
	})
}

func (h *PostHandler) detailOrError(c *fiber.Ctx) (*postDetail, int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, 0, h.View.NotFound(c, msgPostNotFound)
	}
	d, err := h.loadDetail(c.UserContext(), id)
	if api.IsNotFound(err) {
		return nil, id, h.View.NotFound(c, msgPostNotFound)
	}
	if err != nil {
		h.View.Log.WithError(err).WithField("post_id", id).Warn("post detail: load failed")
		return nil, id, h.View.Error(c, statusFor(err), api.UserMessage(err))
	}
	return d, id, nil
}

// GET /post/:id
func (h *PostHandler) Detail(c *fiber.Ctx) error {
	d, _, err := h.detailOrError(c)
	if d == nil {
		return err
	}
	return h.renderDetail(c, fiber.StatusOK, d, "", "")
}

// POST /post/:id/comments
func (h *PostHandler) Comment(c *fiber.Ctx) error {
	user := middleware.UserFrom(c)
	var form dto.CreateCommentForm
	_ = c.BodyParser(&form)
	form.Text = strings.TrimSpace(form.Text)

	d, id, err := h.detailOrError(c)
	if d == nil {
		return err
	}
	if user == nil {
		return h.renderDetail(c, fiber.StatusUnauthorized, d, form.Text, msgLoginToComment)
	}
	if errs := dto.Validate(form); errs != nil {
		msg := msgEmptyComment
		if form.Text != "" {
			msg = errs["Text"]
		}
		return h.renderDetail(c, fiber.StatusUnprocessableEntity, d, form.Text, msg)
	}

	_, err = h.Backend.CreateComment(c.UserContext(), api.CreateCommentRequest{
		PostID:   id,
		UserID:   user.ID,
		NickName: user.NickName,
		Text:     form.Text,
	})
	if err != nil {
		h.View.Log.WithError(err).WithField("post_id", id).Warn("create comment failed")
		return h.renderDetail(c, statusFor(err), d, form.Text, api.UserMessage(err))
	}
	return seeOther(c, fmt.Sprintf("/post/%d", id))
}

func (h *PostHandler) newPostPage(c *fiber.Ctx, status int, tags []models.Tag, form dto.CreatePostForm, errs map[string]string, errMsg string) error {
	selected := make(map[int]bool, len(form.Tags))
	for _, id := range form.Tags {
		selected[id] = true
	}
	if errs == nil {
		errs = map[string]string{}
	}
	return h.View.Render(c, status, "new_post", "New post", fiber.Map{
		"Tags":           tags,
		"Selected":       selected,
		"Description":    form.Description,
		"ImageURLs":      form.ImageURLs,
		"MaxImages":      dto.MaxImages,
		"MaxDescription": dto.MaxDescriptionLen,
		"Errors":         errs,
		"Error":          errMsg,
	})
}

func (h *PostHandler) loadTags(c *fiber.Ctx) ([]models.Tag, string) {
	tags, err := h.Backend.ListTags(c.UserContext())
	if err != nil {
		h.View.Log.WithError(err).Warn("new post: list tags failed")
		return []models.Tag{}, msgTagsUnavailable
	}
	return tags, ""
}

// GET /new-post
func (h *PostHandler) NewPostPage(c *fiber.Ctx) error {
	tags, errMsg := h.loadTags(c)
	return h.newPostPage(c, fiber.StatusOK, tags, dto.CreatePostForm{}, nil, errMsg)
}

// POST /new-post
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	user := middleware.UserFrom(c)

	var form dto.CreatePostForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	form.Description = strings.TrimSpace(form.Description)
	urls := make([]string, 0, len(form.ImageURLs))
	for _, u := range form.ImageURLs {
		urls = append(urls, strings.TrimSpace(u))
	}
	form.ImageURLs = urls

	if errs := dto.Validate(form); errs != nil {
		tags, _ := h.loadTags(c)
		return h.newPostPage(c, fiber.StatusUnprocessableEntity, tags, form, errs, "")
	}

	postID, err := h.Backend.CreatePost(c.UserContext(), api.CreatePostRequest{
		Description: form.Description,
		UserID:      user.ID,
		Tags:        form.Tags,
	})
	if err != nil {
		h.View.Log.WithError(err).WithField("user_id", user.ID).Warn("create post failed")
		tags, _ := h.loadTags(c)
		return h.newPostPage(c, statusFor(err), tags, form, nil, api.UserMessage(err))
	}

	// Images go one call each; a failed association does not undo the post.
	for _, u := range form.ImageURLs {
		if u == "" {
			continue
		}
		if _, err := h.Backend.AssociatePostImage(c.UserContext(), u, postID); err != nil {
			h.View.Log.WithError(err).WithField("post_id", postID).Warn("associate image failed")
		}
	}
	h.View.Log.WithField("post_id", postID).WithField("user_id", user.ID).Info("post created")
	return seeOther(c, "/profile")
}
