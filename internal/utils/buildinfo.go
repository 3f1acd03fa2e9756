package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// GetApplicationVersion attempts to determine the application version.
// It checks Go build info first, then falls back to git describe output when
// the binary runs from a checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}

	repositoryDirectory, repositoryLookupError := findGitRepositoryDirectory(".")
	if repositoryLookupError == nil && repositoryDirectory != "" {
		// #nosec G204
		describeExactCommand := exec.Command("git", "describe", "--tags", "--exact-match")
		describeExactCommand.Dir = repositoryDirectory
		describeExactOutput, describeExactError := describeExactCommand.Output()
		if describeExactError == nil && len(describeExactOutput) > 0 {
			return strings.TrimSpace(string(describeExactOutput))
		}

		// #nosec G204
		describeLongCommand := exec.Command("git", "describe", "--tags", "--long", "--dirty")
		describeLongCommand.Dir = repositoryDirectory
		describeLongOutput, describeLongError := describeLongCommand.Output()
		if describeLongError == nil && len(describeLongOutput) > 0 {
			return strings.TrimSpace(string(describeLongOutput))
		}
	}

	return unknownVersion
}

// findGitRepositoryDirectory walks upward from startDirectory until it finds
// a directory containing a .git folder and returns that directory.
func findGitRepositoryDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, absolutePathError := filepath.Abs(startDirectory)
	if absolutePathError != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", startDirectory, absolutePathError)
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitDirectoryPath := filepath.Join(currentDirectory, GitDirectoryName)
		gitDirectoryInfo, statError := os.Stat(gitDirectoryPath)
		if statError == nil && gitDirectoryInfo.IsDir() {
			return currentDirectory, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return "", fmt.Errorf("%s directory not found in or above %s", GitDirectoryName, absoluteStartDirectory)
}
