// Package commands contains the directory traversal and rendering engine.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorRenderPathFormat is used when a top-level path cannot be rendered.
	errorRenderPathFormat = "rendering tree for %s: %w"

	// summaryLineFormat renders the per-path counters appended after each tree.
	summaryLineFormat = "\n%d directories, %d files\n"

	branchConnector    = "├── "
	lastConnector      = "└── "
	branchChildPadding = "│   "
	lastChildPadding   = "    "

	directorySuffix  = "/"
	hiddenNamePrefix = "."
	lineBreak        = "\n"
)

// directoryEntry describes one filesystem child during a single traversal step.
type directoryEntry struct {
	name        string
	entryPath   string
	isDirectory bool
}

// TreeGenerator renders directory trees for the configured top-level paths.
type TreeGenerator struct {
	configuration types.RunConfiguration
}

// NewTreeGenerator constructs a TreeGenerator for the provided configuration.
func NewTreeGenerator(configuration types.RunConfiguration) *TreeGenerator {
	return &TreeGenerator{configuration: configuration}
}

// Generate walks every configured path in order and returns the concatenated
// rendered trees, each followed by its own summary line. Statistics start
// fresh for every top-level path. The first directory read failure aborts
// the run.
func (generator *TreeGenerator) Generate() (string, error) {
	var outputBuilder strings.Builder

	for _, rootPath := range generator.configuration.Paths {
		statistics := types.TreeStatistics{}

		var ignorePatterns []types.IgnorePattern
		if generator.configuration.Gitignore {
			ignorePatterns = config.LoadGitignorePatterns(rootPath)
		}

		renderedTree, visitError := generator.visitDirectory(rootPath, rootPath, 0, utils.EmptyString, ignorePatterns, &statistics)
		if visitError != nil {
			return utils.EmptyString, fmt.Errorf(errorRenderPathFormat, rootPath, visitError)
		}

		outputBuilder.WriteString(renderedTree)
		outputBuilder.WriteString(fmt.Sprintf(summaryLineFormat, statistics.Directories, statistics.Files))
	}

	return outputBuilder.String(), nil
}

// visitDirectory renders one directory depth-first in pre-order, appending
// each included child beneath linePrefix and accumulating counters into
// statistics. baseDirectory stays fixed to the top-level path for the whole
// recursion so ignore matching sees stable relative paths.
func (generator *TreeGenerator) visitDirectory(
	directoryPath string,
	baseDirectory string,
	level int,
	linePrefix string,
	ignorePatterns []types.IgnorePattern,
	statistics *types.TreeStatistics,
) (string, error) {
	if generator.configuration.MaxDepth != nil && level > *generator.configuration.MaxDepth {
		return utils.EmptyString, nil
	}

	var outputBuilder strings.Builder

	if level == 0 {
		displayPath := directoryPath
		if generator.configuration.FullPath {
			displayPath = utils.CanonicalPathOrSelf(directoryPath)
		}
		outputBuilder.WriteString(displayPath + directorySuffix + lineBreak)
		statistics.Directories++
	}

	includedEntries, listError := generator.listIncludedEntries(directoryPath, baseDirectory, ignorePatterns)
	if listError != nil {
		return utils.EmptyString, listError
	}

	for entryIndex, currentEntry := range includedEntries {
		isLastEntry := entryIndex == len(includedEntries)-1

		connector := utils.EmptyString
		childPadding := utils.EmptyString
		if !generator.configuration.NoIndent {
			if isLastEntry {
				connector = lastConnector
				childPadding = lastChildPadding
			} else {
				connector = branchConnector
				childPadding = branchChildPadding
			}
		}

		outputBuilder.WriteString(linePrefix + connector + generator.formatDisplayName(currentEntry) + lineBreak)

		if currentEntry.isDirectory {
			statistics.Directories++
			childOutput, childError := generator.visitDirectory(currentEntry.entryPath, baseDirectory, level+1, linePrefix+childPadding, ignorePatterns, statistics)
			if childError != nil {
				return utils.EmptyString, childError
			}
			outputBuilder.WriteString(childOutput)
		} else {
			statistics.Files++
		}
	}

	return outputBuilder.String(), nil
}

// listIncludedEntries reads the immediate children of directoryPath, already
// sorted by name, and keeps the ones passing the inclusion filter. Connector
// selection later relies on this post-filter ordering.
func (generator *TreeGenerator) listIncludedEntries(directoryPath string, baseDirectory string, ignorePatterns []types.IgnorePattern) ([]directoryEntry, error) {
	rawEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	var includedEntries []directoryEntry
	for _, rawEntry := range rawEntries {
		currentEntry := directoryEntry{
			name:      rawEntry.Name(),
			entryPath: filepath.Join(directoryPath, rawEntry.Name()),
		}
		// Stat follows symlinks; a broken link is treated as a plain file.
		if entryInfo, statError := os.Stat(currentEntry.entryPath); statError == nil {
			currentEntry.isDirectory = entryInfo.IsDir()
		}
		if generator.shouldIncludeEntry(currentEntry, baseDirectory, ignorePatterns) {
			includedEntries = append(includedEntries, currentEntry)
		}
	}
	return includedEntries, nil
}

// shouldIncludeEntry applies the visibility rules in order: hidden entries,
// the directories-only restriction, the .git directory, and .gitignore
// patterns. The rules are independent; ordering only short-circuits.
func (generator *TreeGenerator) shouldIncludeEntry(currentEntry directoryEntry, baseDirectory string, ignorePatterns []types.IgnorePattern) bool {
	if !generator.configuration.All && strings.HasPrefix(currentEntry.name, hiddenNamePrefix) {
		return false
	}
	if generator.configuration.DirsOnly && !currentEntry.isDirectory {
		return false
	}
	if generator.configuration.Gitignore && currentEntry.name == utils.GitDirectoryName {
		return false
	}
	if generator.configuration.Gitignore && MatchesIgnorePatterns(ignorePatterns, currentEntry.entryPath, baseDirectory, currentEntry.isDirectory) {
		return false
	}
	return true
}

// formatDisplayName renders the entry label: the canonical absolute path in
// full-path mode, otherwise the entry name with a trailing slash marking
// directories.
func (generator *TreeGenerator) formatDisplayName(currentEntry directoryEntry) string {
	if generator.configuration.FullPath {
		return utils.CanonicalPathOrSelf(currentEntry.entryPath)
	}
	if currentEntry.isDirectory {
		return currentEntry.name + directorySuffix
	}
	return currentEntry.name
}
