package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when the http response had a status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrContentTypeNotSupported is returned when the response content type is not supported.
	ErrContentTypeNotSupported = errors.New("response content type not supported")
)
