package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when a sync cycle can't be started because the previous cycle is not finished yet.
var ErrAlreadyRunning = errors.New("sync already running for this feed")
