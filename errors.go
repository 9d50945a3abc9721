package monte

import "errors"

var (
	ErrUnknownCheck = errors.New("unknown check")
	ErrNoChecks     = errors.New("no checks to run")
)
