package cli

import (
	"errors"
	"fmt"

	"github.com/ppiankov/dcntforecast/internal/invoke"
	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
	"github.com/ppiankov/dcntforecast/internal/pipeline"
	"github.com/ppiankov/dcntforecast/internal/prompt"
)

// Process exit codes
const (
	ExitOK                  = 0
	ExitGeneric             = 1
	ExitExtractionFailed    = 2
	ExitForecastFailed      = 3
	ExitCollaboratorMissing = 10
	ExitInvalidYearRange    = 11
	ExitInvalidMonthRange   = 12
	ExitNoFreeFolder        = 13
	ExitAborted             = 130
)

// ExitError carries an explicit exit code up to main
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCodes is checked in order; the first sentinel found wins
var exitCodes = []struct {
	err  error
	code int
}{
	{prompt.ErrAborted, ExitAborted},
	{invoke.ErrNotFound, ExitCollaboratorMissing},
	{model.ErrInvalidYearRange, ExitInvalidYearRange},
	{model.ErrInvalidMonthRange, ExitInvalidMonthRange},
	{layout.ErrNoFreeFolder, ExitNoFreeFolder},
	{pipeline.ErrExtractionFailed, ExitExtractionFailed},
	{pipeline.ErrForecastFailed, ExitForecastFailed},
}

// ExitCode maps an error returned by Execute to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, m := range exitCodes {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return ExitGeneric
}
