package models

// User is the backend's user record. NickName doubles as the login key.
type User struct {
	ID        int    `json:"id"`
	NickName  string `json:"nickName"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
