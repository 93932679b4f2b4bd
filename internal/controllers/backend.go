package controllers

import (
	"context"

	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

// Backend is the part of the REST gateway the pages use. *api.Client implements it.
type Backend interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, nickName, email string) (*models.User, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreatePost(ctx context.Context, req api.CreatePostRequest) (int, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByUser(ctx context.Context, userID int) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	AssociatePostImage(ctx context.Context, imageURL string, postID int) (*models.PostImage, error)
	ListPostImages(ctx context.Context, postID int) ([]models.PostImage, error)
	ListCommentsByPost(ctx context.Context, postID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, req api.CreateCommentRequest) (*models.Comment, error)
}

var _ Backend = (*api.Client)(nil)
