package identity

import (
	"strings"
	"time"
	"unicode"

	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// User is the durable identity behind every token subject. The id is opaque
// and immutable; users are never hard-deleted.
type User struct {
	ID             string     `db:"id"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	HashedPassword string     `db:"hashed_password"`
	Img            *string    `db:"img"`
	CreatedAt      time.Time  `db:"created_at"`
}

var (
	ErrWeakPassword    = apperr.InvalidArg("password must be at least 8 characters and contain an upper-case letter, a lower-case letter, a digit and a special character")
	ErrInvalidUsername = apperr.InvalidArg("username must be 2-64 characters")
	ErrInvalidEmail    = apperr.InvalidArg("email is not valid")
)

// ValidateUsername trims and checks the login name.
func ValidateUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 64 {
		return "", ErrInvalidUsername
	}
	return name, nil
}

// ValidateEmail performs a minimal shape check; real verification happens via
// the confirmation mail flow outside this service.
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidatePassword enforces the complexity rules: minimum 8 characters with
// at least one upper-case letter, one lower-case letter, one digit and one
// special character.
func ValidatePassword(pw string) error {
	if len(pw) < 8 {
		return ErrWeakPassword
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}
