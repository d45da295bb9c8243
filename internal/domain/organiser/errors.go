package organiser

import "errors"

var (
	ErrNotFound = errors.New("organiser not found")
)
