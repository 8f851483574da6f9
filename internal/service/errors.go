package service

import "errors"

// ErrInvalidArgument marks a request whose shape is wrong before any data is
// touched. Use errors.Is; the concrete error's message is a short code.
var ErrInvalidArgument = errors.New("invalid_argument")

// Argument error codes.
var (
	ErrNameSlugRequired = invalidArgument("name_and_slug_required")
	ErrInvalidCategory  = invalidArgument("invalid_category")
	ErrIDsRequired      = invalidArgument("ids_required")
)

type argumentError struct {
	code string
}

func invalidArgument(code string) error { return &argumentError{code: code} }

func (e *argumentError) Error() string { return e.code }

func (e *argumentError) Is(target error) bool { return target == ErrInvalidArgument }
