package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/register"
)

// Backend is what the seeder writes through.
type Backend interface {
	CreateUser(ctx context.Context, nickName, email string) (*models.User, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreatePost(ctx context.Context, req api.CreatePostRequest) (int, error)
	AssociatePostImage(ctx context.Context, imageURL string, postID int) (*models.PostImage, error)
	CreateComment(ctx context.Context, req api.CreateCommentRequest) (*models.Comment, error)
}

type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	Seed            int64
}

type Report struct {
	Users    int
	Posts    int
	Images   int
	Comments int
}

var ErrNoUsers = errors.New("seed: no user could be created")

// NickName turns any fake username into one the registration form accepts.
func NickName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	nick := b.String()
	if len(nick) > register.NickNameMaxLen {
		nick = nick[:register.NickNameMaxLen]
	}
	for len(nick) < register.NickNameMinLen {
		nick += "0"
	}
	return nick
}

func Run(ctx context.Context, b Backend, opts Options, log logrus.FieldLogger) (Report, error) {
	var rep Report
	faker := gofakeit.New(opts.Seed)

	tags, err := b.ListTags(ctx)
	if err != nil {
		log.WithError(err).Warn("seed: tags unavailable, posts get none")
	}

	users := make([]models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		nick := NickName(faker.Username())
		u, err := b.CreateUser(ctx, nick, faker.Email())
		if err != nil {
			log.WithError(err).WithField("nick", nick).Warn("seed: create user failed")
			continue
		}
		users = append(users, *u)
		rep.Users++
	}
	if len(users) == 0 && opts.Users > 0 {
		return rep, ErrNoUsers
	}

	for _, u := range users {
		for p := 0; p < opts.PostsPerUser; p++ {
			req := api.CreatePostRequest{
				Description: faker.Sentence(faker.Number(4, 14)),
				UserID:      u.ID,
			}
			for _, t := range tags {
				if faker.Bool() {
					req.Tags = append(req.Tags, t.ID)
				}
			}
			postID, err := b.CreatePost(ctx, req)
			if err != nil {
				return rep, fmt.Errorf("seed post for %s: %w", u.NickName, err)
			}
			rep.Posts++

			for n := faker.Number(0, 3); n > 0; n-- {
				url := faker.ImageURL(640, 480)
				if _, err := b.AssociatePostImage(ctx, url, postID); err != nil {
					log.WithError(err).WithField("post_id", postID).Warn("seed: image failed")
					continue
				}
				rep.Images++
			}

			for c := 0; c < opts.CommentsPerPost; c++ {
				author := users[faker.Number(0, len(users)-1)]
				_, err := b.CreateComment(ctx, api.CreateCommentRequest{
					PostID:   postID,
					UserID:   author.ID,
					NickName: author.NickName,
					Text:     faker.Sentence(faker.Number(3, 10)),
				})
				if err != nil {
					log.WithError(err).WithField("post_id", postID).Warn("seed: comment failed")
					continue
				}
				rep.Comments++
			}
		}
	}
	return rep, nil
}
