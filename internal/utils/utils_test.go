package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

// TestRelativeToBase verifies prefix stripping and the empty result for
// paths outside the base directory.
func TestRelativeToBase(testingHandle *testing.T) {
	testCases := []struct {
		name             string
		fullPath         string
		baseDirectory    string
		expectedRelative string
	}{
		{name: "direct child", fullPath: "/base/a.txt", baseDirectory: "/base", expectedRelative: "a.txt"},
		{name: "nested child", fullPath: "/base/sub/b.txt", baseDirectory: "/base", expectedRelative: "sub/b.txt"},
		{name: "base with trailing slash", fullPath: "/base/a.txt", baseDirectory: "/base/", expectedRelative: "a.txt"},
		{name: "not a descendant", fullPath: "/other/a.txt", baseDirectory: "/base", expectedRelative: ""},
		{name: "path equals base", fullPath: "/base", baseDirectory: "/base", expectedRelative: ""},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			actualRelative := utils.RelativeToBase(testCase.fullPath, testCase.baseDirectory)
			if actualRelative != testCase.expectedRelative {
				subtestHandle.Fatalf("RelativeToBase(%q, %q) = %q, want %q", testCase.fullPath, testCase.baseDirectory, actualRelative, testCase.expectedRelative)
			}
		})
	}
}

// TestRelativeToBaseRelativeInputs verifies that a relative base directory
// such as "." yields the same relative paths as its absolute form.
func TestRelativeToBaseRelativeInputs(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	previousDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		testingHandle.Fatalf("failed to get working directory: %v", workingDirectoryError)
	}
	if chdirError := os.Chdir(rootDirectory); chdirError != nil {
		testingHandle.Fatalf("failed to change directory: %v", chdirError)
	}
	testingHandle.Cleanup(func() {
		if chdirError := os.Chdir(previousDirectory); chdirError != nil {
			testingHandle.Fatalf("failed to restore working directory: %v", chdirError)
		}
	})

	if actualRelative := utils.RelativeToBase("dist", "."); actualRelative != "dist" {
		testingHandle.Fatalf(`RelativeToBase("dist", ".") = %q, want "dist"`, actualRelative)
	}
	if actualRelative := utils.RelativeToBase(filepath.Join("sub", "b.txt"), "."); actualRelative != "sub/b.txt" {
		testingHandle.Fatalf(`RelativeToBase("sub/b.txt", ".") = %q, want "sub/b.txt"`, actualRelative)
	}
	if actualRelative := utils.RelativeToBase(filepath.Join(".", "dist"), "."); actualRelative != "dist" {
		testingHandle.Fatalf(`RelativeToBase("./dist", ".") = %q, want "dist"`, actualRelative)
	}
	if actualRelative := utils.RelativeToBase("/elsewhere/file.txt", "."); actualRelative != "" {
		testingHandle.Fatalf(`RelativeToBase("/elsewhere/file.txt", ".") = %q, want ""`, actualRelative)
	}
}

// TestCanonicalPathOrSelfResolvesSymlink verifies symlink resolution to the
// canonical target path.
func TestCanonicalPathOrSelfResolvesSymlink(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	targetDirectoryPath := filepath.Join(rootDirectory, "target")
	if makeDirectoryError := os.Mkdir(targetDirectoryPath, 0o755); makeDirectoryError != nil {
		testingHandle.Fatalf("failed to create target directory: %v", makeDirectoryError)
	}
	linkPath := filepath.Join(rootDirectory, "link")
	if symlinkError := os.Symlink(targetDirectoryPath, linkPath); symlinkError != nil {
		testingHandle.Skipf("symlinks unavailable: %v", symlinkError)
	}

	canonicalTarget := utils.CanonicalPathOrSelf(targetDirectoryPath)
	canonicalLink := utils.CanonicalPathOrSelf(linkPath)
	if canonicalLink != canonicalTarget {
		testingHandle.Fatalf("expected %q to resolve to %q, got %q", linkPath, canonicalTarget, canonicalLink)
	}
}

// TestCanonicalPathOrSelfFallsBack verifies the silent fallback to the input
// path when resolution fails.
func TestCanonicalPathOrSelfFallsBack(testingHandle *testing.T) {
	missingPath := filepath.Join(testingHandle.TempDir(), "does-not-exist")
	if actualPath := utils.CanonicalPathOrSelf(missingPath); actualPath != missingPath {
		testingHandle.Fatalf("expected fallback to %q, got %q", missingPath, actualPath)
	}
}
