// Package utils contains general helper functions used across the dirtree tool.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// CanonicalPathOrSelf resolves inputPath to a canonical absolute path with
// symlinks evaluated. Resolution failures (for example a broken symlink) fall
// back to the original path instead of surfacing an error.
func CanonicalPathOrSelf(inputPath string) string {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return inputPath
	}
	resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath)
	if resolveError != nil {
		return inputPath
	}
	return resolvedPath
}

// RelativeToBase returns fullPath with the baseDirectory prefix stripped, in
// forward-slash form. It returns the empty string when fullPath is not a
// descendant of baseDirectory or equals it. Both sides are absolutized first
// so that a relative base such as "." and children built from it compare on
// equal footing.
func RelativeToBase(fullPath string, baseDirectory string) string {
	normalizedPath := normalizeForComparison(fullPath)
	normalizedBase := strings.TrimSuffix(normalizeForComparison(baseDirectory), pathSegmentSeparator)
	basePrefix := normalizedBase + pathSegmentSeparator
	if !strings.HasPrefix(normalizedPath, basePrefix) {
		return EmptyString
	}
	return normalizedPath[len(basePrefix):]
}

// normalizeForComparison resolves inputPath to absolute, forward-slash form,
// falling back to the cleaned input when resolution fails.
func normalizeForComparison(inputPath string) string {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return filepath.ToSlash(filepath.Clean(inputPath))
	}
	return filepath.ToSlash(absolutePath)
}
