package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName      = errors.New("name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyStartDate = errors.New("startDate is required")
	ErrInvalidDate    = errors.New("invalid date")
)
