package cmdutil

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// FlagError indicates bad flags or arguments. When Main() encounters this error
// type, it prints the error message followed by a usage hint and exits 2.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap wraps an existing error as a FlagError.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// FlagErrorFunc is installed with cobra's SetFlagErrorFunc so parse failures
// such as "--limit abc" surface as FlagErrors.
func FlagErrorFunc(_ *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	return FlagErrorWrap(err)
}

// SilentError signals that the error has already been displayed to the user.
// Main() will exit non-zero but not print anything additional.
var SilentError = errors.New("SilentError")
