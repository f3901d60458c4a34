package appointment

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxServiceNameLength = 120

var (
	ErrEmptyServiceName   = errors.New("service name is required")
	ErrServiceNameTooLong = errors.New("service name is too long")
)

type ServiceName struct {
	value string
}

func NewServiceName(s string) (ServiceName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServiceName{}, ErrEmptyServiceName
	}
	if utf8.RuneCountInString(s) > maxServiceNameLength {
		return ServiceName{}, ErrServiceNameTooLong
	}
	return ServiceName{value: s}, nil
}

func (n ServiceName) Value() string {
	return n.value
}
