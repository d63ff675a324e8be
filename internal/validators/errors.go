package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidDate   = errors.New("date must look like YYYY-MM-DD")
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyPassword = errors.New("password is required")
	ErrShortPassword = errors.New("password must be at least 6 characters")
)
