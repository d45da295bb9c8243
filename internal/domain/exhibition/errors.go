package exhibition

import "errors"

var (
	ErrNotFound           = errors.New("exhibition not found")
	ErrConfirmationNeeded = errors.New("bulk delete requires confirmation")
)
