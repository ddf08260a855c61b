package runner

import (
	"context"
	"fmt"

	"github.com/a1f/pyguard/pkg/scanner"
)

// Discover finds files matching opts under the given working directory,
// delegating the actual glob walk to pkg/scanner (component C7). It
// returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	files, err := scanner.Scan(ctx, scanner.Options{
		Paths:      opts.Paths,
		WorkingDir: opts.WorkingDir,
		Include:    opts.effectiveInclude(),
		Exclude:    opts.effectiveExclude(),
	})
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}
	return files, nil
}
