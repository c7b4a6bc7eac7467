package services

import (
	"errors"
	"regexp"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/errorz"
)

// Field keys used in validation errors.
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	minPasswordLen = 8
	minFullNameLen = 3
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailFormat      = errors.New("invalid email format")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordShort    = errors.New("password shorter than 8 characters")
	ErrNameRequired     = errors.New("name is required")
	ErrNameShort        = errors.New("name shorter than 3 characters")
)

// Form names the form a validation error is shown on. The signup form
// words its required-field messages more emphatically.
type Form int

const (
	FormLogin Form = iota
	FormSignup
)

var fieldMessages = []struct {
	err      error
	msg      string
	required bool
}{
	{ErrNameRequired, "Name is required", true},
	{ErrNameShort, "Minimum 3 characters", false},
	{ErrEmailRequired, "Email is required", true},
	{ErrEmailFormat, "Invalid email format", false},
	{ErrPasswordRequired, "Password is required", true},
	{ErrPasswordShort, "Minimum 8 characters", false},
}

// Message returns the text shown next to a field for validation error err.
// Errors that are not validation errors are returned as is.
func (f Form) Message(err error) string {
	for _, m := range fieldMessages {
		if !errors.Is(err, m.err) {
			continue
		}
		if m.required && f == FormSignup {
			return m.msg + "!"
		}
		return m.msg
	}
	return err.Error()
}

// LoginInput is what the login form collects.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks the shape of the credentials. It returns
// errorz.InvalidInput with one errorz.Keyed entry per bad field.
func (in LoginInput) Validate() error {
	var errs errorz.InvalidInput
	errs = appendErr(errs, FieldEmail, validateEmail(in.Email))
	errs = appendErr(errs, FieldPassword, validatePassword(in.Password))
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmail(email string) error {
	switch {
	case email == "":
		return ErrEmailRequired
	case !emailPattern.MatchString(email):
		return ErrEmailFormat
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len([]rune(password)) < minPasswordLen:
		return ErrPasswordShort
	}
	return nil
}

func validateFullName(name string) error {
	switch {
	case name == "":
		return ErrNameRequired
	case len([]rune(name)) < minFullNameLen:
		return ErrNameShort
	}
	return nil
}

func appendErr(errs errorz.InvalidInput, key string, err error) errorz.InvalidInput {
	if err == nil {
		return errs
	}
	return append(errs, errorz.Keyed{Key: key, Err: err})
}

// SignupInput is what the signup form collects. Image is nil when no
// profile picture was chosen.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	Image    *uploader.Image
}

// Validate checks the shape of the signup fields, like LoginInput.Validate
// plus the full-name rule.
func (in SignupInput) Validate() error {
	var errs errorz.InvalidInput
	errs = appendErr(errs, FieldFullName, validateFullName(in.FullName))
	errs = appendErr(errs, FieldEmail, validateEmail(in.Email))
	errs = appendErr(errs, FieldPassword, validatePassword(in.Password))
	if len(errs) > 0 {
		return errs
	}
	return nil
}
