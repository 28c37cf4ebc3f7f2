package cookie

import "errors"

var (
	ErrCookieNotFound  = errors.New("cookie not found")
	ErrEmptyValue      = errors.New("cookie has an empty value")
	ErrInvalidSameSite = errors.New("invalid SameSite mode")
)
