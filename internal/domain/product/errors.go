package product

import "errors"

var (
	ErrNotFound           = errors.New("product not found")
	ErrConfirmationNeeded = errors.New("bulk delete requires confirmation")
)
