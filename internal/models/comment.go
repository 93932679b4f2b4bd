package models

import "time"

type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"postId"`
	UserID    int       `json:"userId"`
	NickName  string    `json:"nickName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
