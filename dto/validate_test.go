package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreatePostForm(t *testing.T) {
	ok := CreatePostForm{Description: "hola", Tags: []int{1, 2}, ImageURLs: []string{"https://img.test/a.png", ""}}
	assert.Nil(t, Validate(ok))

	errs := Validate(CreatePostForm{})
	assert.Equal(t, "This field is required.", errs["Description"])

	errs = Validate(CreatePostForm{Description: strings.Repeat("x", MaxDescriptionLen+1)})
	assert.Equal(t, "At most 500 characters are allowed.", errs["Description"])

	errs = Validate(CreatePostForm{Description: "x", ImageURLs: []string{"a", "b", "c", "d"}})
	assert.Equal(t, "At most 3 items are allowed.", errs["ImageURLs"])

	errs = Validate(CreatePostForm{Description: "x", ImageURLs: []string{"not a url"}})
	assert.Equal(t, "Must be a valid URL.", errs["ImageURLs"])
}

func TestValidateComment(t *testing.T) {
	assert.NotNil(t, Validate(CreateCommentForm{}))
	assert.Nil(t, Validate(CreateCommentForm{Text: "buen post"}))
}
