package download

import "errors"

// ErrInvalidURL marks malformed input that was never attempted
var ErrInvalidURL = errors.New("invalid URL format")
