package core

import "errors"

var (
	ErrMissingInput     = errors.New("missing input")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Kind names the error class of err for structured error replies.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingInput):
		return "MissingInput"
	case errors.Is(err, ErrInvalidParameter):
		return "InvalidParameter"
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	}
	return "Internal"
}
