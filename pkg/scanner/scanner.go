// Package scanner discovers source files under a set of input paths,
// filtering them against include/exclude glob patterns (component C7).
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls a single discovery pass.
type Options struct {
	// Paths are the user-specified files or directories to scan. A nil or
	// empty slice defaults to the current working directory.
	Paths []string

	// WorkingDir anchors relative entries in Paths. Defaults to the
	// process working directory when empty.
	WorkingDir string

	// Include is the set of glob patterns a file must match at least one
	// of. An empty slice matches everything.
	Include []string

	// Exclude is the set of glob patterns that remove an otherwise
	// matching file or directory. Exclusions always win over inclusions.
	Exclude []string
}

// Scan discovers files under opts.Paths, honoring Include/Exclude, and
// returns a deterministic, sorted, deduplicated list of absolute paths.
//
// Matching is relative to the nearest root that contains a candidate file:
// for a directory in Paths, that root is the directory itself; for an
// explicit file in Paths, the root is the file's parent directory.
func Scan(ctx context.Context, opts Options) ([]string, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("scanner: resolve working directory: %w", err)
		}
		workDir = wd
	}

	inputs := opts.Paths
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	seen := make(map[string]struct{})
	var out []string

	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scanner: cancelled: %w", ctx.Err())
		default:
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("scanner: stat %s: %w", input, err)
		}

		if info.IsDir() {
			files, err := walk(ctx, abs, opts.Include, opts.Exclude)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				addUnique(&out, seen, f)
			}
			continue
		}

		root := filepath.Dir(abs)
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			rel = filepath.Base(abs)
		}
		if matches(filepath.ToSlash(rel), opts.Include, opts.Exclude) {
			addUnique(&out, seen, abs)
		}
	}

	sort.Strings(out)
	return out, nil
}

func addUnique(out *[]string, seen map[string]struct{}, path string) {
	if _, ok := seen[path]; ok {
		return
	}
	seen[path] = struct{}{}
	*out = append(*out, path)
}

// walk recursively collects files under root whose path relative to root
// matches Include and does not match Exclude. Directories matching an
// exclude pattern are pruned rather than descended into.
func walk(ctx context.Context, root string, include, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel == "." {
				return nil
			}
			if matchesAny(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if matches(rel, include, exclude) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanner: walk %s: %w", root, err)
	}
	return files, nil
}

func matches(relPath string, include, exclude []string) bool {
	if matchesAny(relPath, exclude) {
		return false
	}
	if len(include) == 0 {
		return true
	}
	return matchesAny(relPath, include)
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, relPath)
		if err == nil && ok {
			return true
		}
		// Also allow the pattern to match the bare filename, so a pattern
		// like "*.py" (no leading **/) still catches nested files the way
		// users expect from simple single-segment patterns.
		if base := filepath.Base(relPath); base != relPath {
			if ok, err := doublestar.Match(pattern, base); err == nil && ok {
				return true
			}
		}
	}
	return false
}
