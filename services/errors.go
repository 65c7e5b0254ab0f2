package services

import (
	"errors"
)

// User-facing failures. Handlers classify these with ErrorKind and map the
// kind to an HTTP status; anything unclassified is treated as an upstream
// failure, logged server-side, and surfaced as a generic message.
var (
	ErrEmailInvited            = errors.New("a pending invitation for this email already exists")
	ErrEmailRegistered         = errors.New("a user with this email already exists")
	ErrStudentIDExists         = errors.New("a student with this ID already exists")
	ErrCodeGenerationExhausted = errors.New("failed to generate unique invite code, please try again")

	ErrInvalidCode     = errors.New("invalid or expired invitation code")
	ErrEmailMismatch   = errors.New("email does not match this invitation code")
	ErrAlreadyConsumed = errors.New("this invitation has already been used")

	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	ErrQuizInvalid = errors.New("invalid quiz")

	ErrInvitationNotFound = errors.New("invitation not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrResetNotFound      = errors.New("password reset request not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

type ErrorKind int

const (
	KindUpstream ErrorKind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmailInvited),
		errors.Is(err, ErrEmailRegistered),
		errors.Is(err, ErrStudentIDExists),
		errors.Is(err, ErrAlreadyConsumed):
		return KindConflict
	case errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrEmailMismatch),
		errors.Is(err, ErrQuizInvalid):
		return KindValidation
	case errors.Is(err, ErrInvalidCode),
		errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrStudentNotFound),
		errors.Is(err, ErrQuizNotFound),
		errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrResetNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return KindUnauthorized
	default:
		return KindUpstream
	}
}
