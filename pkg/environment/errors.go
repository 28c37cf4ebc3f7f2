package environment

import "errors"

// ErrUnknownMode is returned by ParseMode for unrecognised environment names.
var ErrUnknownMode = errors.New("unknown deployment mode")
