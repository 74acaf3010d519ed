// Package example discovers the runnable example programs of a project.
package example

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Example identifies a single runnable example, derived from one source file
type Example struct {
	Name string // base name with the extension stripped; selects the example at the build tool
	Path string // the matched source file path
}

// Discover returns the examples whose source files match pattern within dir, in the order
// filepath.Glob yields them. Zero matches is not an error: the result is simply empty
func Discover(dir string, pattern string) ([]Example, error) {
	globPattern := filepath.Join(dir, pattern)
	matches, err := filepath.Glob(globPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob '%s': %w", globPattern, err)
	}

	examples := make([]Example, 0, len(matches))
	for _, path := range matches {
		examples = append(examples, Example{
			Name: nameFromPath(path),
			Path: path,
		})
	}

	return examples, nil
}

// nameFromPath derives an example's display name from its source file path: the directory
// and the extension are stripped, everything else is preserved
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
