// Package runner provides multi-file linting orchestration.
package runner

import "github.com/a1f/pyguard/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// relative Include/Exclude patterns. If empty, the current process
	// working directory is used.
	WorkingDir string

	// IncludeGlobs are additional glob patterns files must match. Empty
	// means "use Config.Include".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// Empty means "use Config.Exclude".
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveInclude returns the include patterns to scan with, preferring
// the options' own override over the resolved configuration.
func (o Options) effectiveInclude() []string {
	if len(o.IncludeGlobs) > 0 {
		return o.IncludeGlobs
	}
	if o.Config != nil {
		return o.Config.Include
	}
	return config.DefaultInclude
}

// effectiveExclude returns the exclude patterns to scan with, preferring
// the options' own override over the resolved configuration.
func (o Options) effectiveExclude() []string {
	if len(o.ExcludeGlobs) > 0 {
		return o.ExcludeGlobs
	}
	if o.Config != nil {
		return o.Config.Exclude
	}
	return config.DefaultExcludes
}
