package monte

import (
	"github.com/stvp/rollbar"
)

// ErrorReporter sends unexpected errors, such as a check that panics, to an external crash
// reporting service
type ErrorReporter interface {
	ReportError(err error)
	// Wait blocks until reported errors are sent
	Wait()
}

type noopReporter struct{}

func (noopReporter) ReportError(err error) {}
func (noopReporter) Wait()                 {}

type rollbarReporter struct{}

// NewErrorReporter returns a reporter that sends errors to Rollbar.  An empty token disables
// reporting.
func NewErrorReporter(token string, environment string) ErrorReporter {
	if token == "" {
		return noopReporter{}
	}
	rollbar.Token = token
	switch environment {
	case "":
		rollbar.Environment = "production"
	default:
		rollbar.Environment = environment
	}
	return rollbarReporter{}
}

func (rollbarReporter) ReportError(err error) {
	rollbar.Error(rollbar.ERR, err)
}

func (rollbarReporter) Wait() {
	rollbar.Wait()
}
