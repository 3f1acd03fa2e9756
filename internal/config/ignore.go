// Package config loads application configuration and parses ignore files.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	commentLinePrefix   = "#"
	negationMarker      = "!"
	pathAnchorMarker    = "/"
	directoryOnlySuffix = "/"
)

// ParseIgnorePattern derives the pattern flags from a raw .gitignore line.
// Markers are stripped in order: negation prefix, root anchor, directory
// suffix. The remaining text becomes the pattern body.
func ParseIgnorePattern(rawPattern string) types.IgnorePattern {
	patternText := rawPattern

	isNegated := strings.HasPrefix(patternText, negationMarker)
	if isNegated {
		patternText = patternText[len(negationMarker):]
	}

	isAnchoredToRoot := strings.HasPrefix(patternText, pathAnchorMarker)
	patternText = strings.TrimLeft(patternText, pathAnchorMarker)

	isDirectoryOnly := strings.HasSuffix(patternText, directoryOnlySuffix)
	patternText = strings.TrimRight(patternText, directoryOnlySuffix)

	return types.IgnorePattern{
		Body:           patternText,
		Negated:        isNegated,
		AnchoredToRoot: isAnchoredToRoot,
		DirectoryOnly:  isDirectoryOnly,
	}
}

// LoadGitignorePatterns reads <baseDirectory>/.gitignore and returns its
// patterns in file order. Blank lines and comment lines are skipped. A
// missing or unreadable file yields an empty pattern list, never an error.
//
// #nosec G304
func LoadGitignorePatterns(baseDirectory string) []types.IgnorePattern {
	ignoreFilePath := filepath.Join(baseDirectory, utils.GitIgnoreFileName)
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		return nil
	}
	defer func() {
		_ = fileHandle.Close()
	}()

	var parsedPatterns []types.IgnorePattern
	lineScanner := bufio.NewScanner(fileHandle)
	for lineScanner.Scan() {
		trimmedLine := strings.TrimSpace(lineScanner.Text())
		if trimmedLine == utils.EmptyString || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		parsedPatterns = append(parsedPatterns, ParseIgnorePattern(lineScanner.Text()))
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil
	}
	return parsedPatterns
}
