package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cowork-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewKind("password must be at least 6 characters long", errs.ErrValidation)
	ErrEmptyName       = errs.NewKind("user name cannot be empty", errs.ErrValidation)
	ErrNameTooLong     = errs.NewKind("user name is too long (max 255 characters)", errs.ErrValidation)
)

const (
	MinPasswordLength = 6
	MaxNameLength     = 255
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
