package catalog

import "errors"

var (
	// ErrNotFound is returned when the remote product does not exist.
	ErrNotFound = errors.New("remote product not found")
	// ErrStatusNotOK is returned when the remote API responds with an unexpected status.
	ErrStatusNotOK = errors.New("unexpected remote catalog response status")
)
