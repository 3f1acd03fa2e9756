package commands

import (
	"path/filepath"
	"strings"

	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const pathSegmentSeparator = "/"

// MatchesIgnorePatterns evaluates entryPath against the loaded .gitignore
// patterns in file order. The first matching pattern decides the verdict:
// a plain match means "ignore", a negated match means "do not ignore", and
// the scan stops either way. With no matching pattern the entry is kept.
//
// Anchored patterns compare the path relative to baseDirectory exactly.
// Directory-only patterns apply to directory entries and match either the
// entry name or a "/<body>/" path segment. Remaining patterns match the
// entry name with wildcard semantics or a "/<body>" substring of the
// relative path.
func MatchesIgnorePatterns(ignorePatterns []types.IgnorePattern, entryPath string, baseDirectory string, isDirectory bool) bool {
	if len(ignorePatterns) == 0 {
		return false
	}

	entryName := filepath.Base(entryPath)
	relativePath := utils.RelativeToBase(entryPath, baseDirectory)

	for _, ignorePattern := range ignorePatterns {
		if matchesSinglePattern(ignorePattern, entryName, relativePath, isDirectory) {
			return !ignorePattern.Negated
		}
	}
	return false
}

// matchesSinglePattern reports whether one pattern applies to the entry,
// irrespective of negation.
func matchesSinglePattern(ignorePattern types.IgnorePattern, entryName string, relativePath string, isDirectory bool) bool {
	if ignorePattern.AnchoredToRoot {
		return relativePath == ignorePattern.Body
	}

	if ignorePattern.DirectoryOnly {
		if !isDirectory {
			return false
		}
		if entryName == ignorePattern.Body {
			return true
		}
		return strings.Contains(relativePath, pathSegmentSeparator+ignorePattern.Body+pathSegmentSeparator)
	}

	if utils.MatchesWildcard(ignorePattern.Body, entryName) {
		return true
	}
	return strings.Contains(relativePath, pathSegmentSeparator+ignorePattern.Body)
}
