package register

import (
	"regexp"
	"sort"
	"strings"
)

const (
	NickNameMinLen = 3
	NickNameMaxLen = 20

	NickNameMessage = "Nickname must be alphanumeric and between 3 and 20 characters."
	EmailMessage    = "Invalid email address."
)

var (
	nickNameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func ValidateNickName(nickName string) bool {
	return len(nickName) >= NickNameMinLen &&
		len(nickName) <= NickNameMaxLen &&
		nickNameRe.MatchString(nickName)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidationError maps form field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid registration: " + strings.Join(parts, "; ")
}

// Validate checks both fields and returns nil or a *ValidationError.
func Validate(v Values) error {
	fields := map[string]string{}
	if !ValidateNickName(v.NickName) {
		fields["nickName"] = NickNameMessage
	}
	if !ValidateEmail(v.Email) {
		fields["email"] = EmailMessage
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
