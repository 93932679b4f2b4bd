package models

import "time"

type Post struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	User        *User     `json:"User,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []Tag     `json:"Tags,omitempty"`
}

// AuthorNickName falls back to a placeholder when the backend did not embed the owner.
func (p Post) AuthorNickName() string {
	if p.User != nil && p.User.NickName != "" {
		return p.User.NickName
	}
	return "Unknown user"
}

func (p Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}

type PostImage struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	PostID int    `json:"postId"`
}
