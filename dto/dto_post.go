package dto

import "time"

const (
	MaxDescriptionLen = 500
	MaxImages         = 3
)

// ===== Request =====
type CreatePostForm struct {
	Description string   `form:"description" validate:"required,max=500"`
	Tags        []int    `form:"tags" validate:"dive,gt=0"`
	ImageURLs   []string `form:"imageUrls" validate:"max=3,dive,omitempty,url"`
}

type CreateCommentForm struct {
	Text string `form:"text" validate:"required,max=2000"`
}

// ===== Response =====
type FeedPost struct {
	ID            int       `json:"id" example:"12"`
	Author        string    `json:"author" example:"ana123"`
	Description   string    `json:"description" example:"Primer post"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	CommentsCount int       `json:"commentsCount" example:"3"`
	ImageURLs     []string  `json:"imageUrls"`
}

type FeedResponse struct {
	Items []FeedPost `json:"items"`
	Count int        `json:"count" example:"1"`
}
