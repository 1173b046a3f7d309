// Package stacktrace trims runtime stacks down to this module's own frames.
package stacktrace

import "strings"

// InternalPaths returns the "internal/<pkg>/<file>.go:<line>" locations found
// in a debug.Stack dump, innermost first. Frames outside internal/ are dropped.
func InternalPaths(stack []byte) []string {
	var paths []string
	for line := range strings.Lines(string(stack)) {
		_, rel, ok := strings.Cut(strings.TrimSpace(line), "/internal/")
		if !ok {
			continue
		}

		file, _, _ := strings.Cut(rel, " ")
		if !strings.Contains(file, ".go:") {
			continue
		}

		paths = append(paths, "internal/"+file)
	}

	return paths
}
