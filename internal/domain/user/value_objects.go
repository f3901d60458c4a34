package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

// Email is a bare, lower-cased address; directory lookups compare it as is.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like "Ana <ana@example.com>".
	if err != nil || addr.Address != s {
		return Email{}, ErrInvalidEmail
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" || !strings.Contains(domain, ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Masked keeps the first letter of the local part, for log lines.
func (e Email) Masked() string {
	local, domain, ok := strings.Cut(e.value, "@")
	if !ok || local == "" {
		return ""
	}
	return local[:1] + "***@" + domain
}
