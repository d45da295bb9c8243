package company

import "errors"

var (
	ErrNotFound           = errors.New("company not found")
	ErrConfirmationNeeded = errors.New("bulk delete requires confirmation")
)
