package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	opListUsers          = "list_users"
	opCreateUser         = "create_user"
	opListTags           = "list_tags"
	opCreatePost         = "create_post"
	opListPosts          = "list_posts"
	opListPostsByUser    = "list_posts_by_user"
	opGetPost            = "get_post"
	opAssociatePostImage = "associate_post_image"
	opListPostImages     = "list_post_images"
	opListComments       = "list_comments"
	opCreateComment      = "create_comment"
)

var genericMessages = map[string]string{
	opListUsers:          "Could not load users.",
	opCreateUser:         "Could not create the user, the nickname may already exist.",
	opListTags:           "Could not load tags.",
	opCreatePost:         "Could not create the post.",
	opListPosts:          "Could not load posts.",
	opListPostsByUser:    "Could not load your posts.",
	opGetPost:            "Could not load the post.",
	opAssociatePostImage: "Could not attach the image.",
	opListPostImages:     "Could not load images.",
	opListComments:       "Could not load comments.",
	opCreateComment:      "Could not add the comment.",
}

func genericMessage(op string) string {
	if msg, ok := genericMessages[op]; ok {
		return msg
	}
	return "The server rejected the request."
}

// RequestError is a non-2xx backend response. Message is what the backend said,
// or a generic message when it said nothing usable.
type RequestError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status %d: %s: %v", e.Op, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NetworkError means the request never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError is returned for addressed resources the backend does not have.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func handleApiError(op string, r *http.Response, body []byte) *RequestError {
	apiErr := &RequestError{Op: op, Status: r.StatusCode, Message: genericMessage(op)}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return apiErr
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}
	switch {
	case strings.TrimSpace(eb.Message) != "":
		apiErr.Message = strings.TrimSpace(eb.Message)
	case strings.TrimSpace(eb.Error) != "":
		apiErr.Message = strings.TrimSpace(eb.Error)
	}
	return apiErr
}

// UserMessage picks the text to show a visitor for any gateway error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		reqErr *RequestError
		nfErr  *NotFoundError
		netErr *NetworkError
	)
	switch {
	case errors.As(err, &reqErr):
		return reqErr.Message
	case errors.As(err, &nfErr):
		return "The " + nfErr.Resource + " does not exist."
	case errors.As(err, &netErr):
		return "Could not reach the server. Try again later."
	}
	return "Something went wrong."
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}
