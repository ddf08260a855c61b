package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output. Values: "auto" (default), "always", "never".
	Color string

	// ShowContext includes source line context in diagnostics.
	ShowContext bool

	// ShowSummary appends the one-line aggregate summary after results.
	ShowSummary bool

	// Compact uses minified JSON when true.
	Compact bool

	// WorkingDir is the caller's working directory. The reporters do not
	// read it: paths are printed as they appear in the result.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
