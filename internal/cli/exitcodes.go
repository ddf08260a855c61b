package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/internal/configloader"
)

// Exit codes for pyguard, per its command-line contract: a clean run
// exits 0, diagnostics at error severity (or a bad configuration, or
// fix --check finding pending changes) exit 1, and invalid CLI usage
// exits 2.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidUsage = 2
)

// ErrConfigInvalid wraps one or more configuration validation errors.
type ErrConfigInvalid struct {
	Errors []error
}

func (e *ErrConfigInvalid) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid configuration: %v", e.Errors[0])
	}
	return fmt.Sprintf("invalid configuration: %d problems found", len(e.Errors))
}

func joinConfigErrors(errs []error) error {
	return &ErrConfigInvalid{Errors: errs}
}

// ErrPendingFixes is returned by `fix --check` when there are changes
// that would be made but were not written to disk.
var ErrPendingFixes = errors.New("pending fixes found")

// ExitCode maps an error returned from a command's RunE to a process
// exit code. A nil error always means success.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitInvalidUsage
	}

	if isCobraUsageError(err) {
		return ExitInvalidUsage
	}

	return ExitFailure
}

// cobraUsageMarkers are substrings cobra/pflag use in errors raised
// before a command's RunE ever executes: unknown or malformed flags,
// argument-count validators, and flag-group constraints such as
// MarkFlagsMutuallyExclusive. None of pyguard's own errors use this
// phrasing, so a substring match is enough to tell the two apart
// without cobra exposing a typed "this was a parse error" signal.
var cobraUsageMarkers = []string{
	"unknown flag:",
	"unknown shorthand flag:",
	"unknown command",
	"invalid argument",
	"accepts at most",
	"accepts between",
	"accepts no",
	"requires at least",
	"required flag(s)",
	"flags cannot be used together",
	"if any flags in the group",
}

func isCobraUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range cobraUsageMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// UsageError marks an error as a CLI usage mistake (bad flags, bad
// arguments) rather than a lint/fix/config failure.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// commonRunInputs resolves the working directory and the --config /
// --color persistent flags shared by every subcommand.
func commonRunInputs(cmd *cobra.Command) (workDir, configPath, color string, err error) {
	workDir, err = os.Getwd()
	if err != nil {
		return "", "", "", fmt.Errorf("get working directory: %w", err)
	}

	configPath, err = cmd.Flags().GetString("config")
	if err != nil {
		return "", "", "", &UsageError{Err: err}
	}

	color, err = cmd.Flags().GetString("color")
	if err != nil {
		color = "auto"
	}

	return workDir, configPath, color, nil
}

// loadAndValidate loads the effective configuration for workDir and
// returns a wrapped ErrConfigInvalid if any validation problems exist.
func loadAndValidate(ctx context.Context, opts configloader.LoadOptions) (*configloader.LoadResult, error) {
	loadResult, err := configloader.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if errs := configloader.Validate(loadResult.Config); len(errs) > 0 {
		return nil, joinConfigErrors(errs)
	}
	return loadResult, nil
}
