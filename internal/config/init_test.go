package config

import (
	"os"
	"strings"
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

// TestInitializeConfigurationLocal verifies default-file creation and the
// overwrite guard.
func TestInitializeConfigurationLocal(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()

	destinationPath, initializationError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializationError != nil {
		testingHandle.Fatalf("InitializeConfiguration failed: %v", initializationError)
	}
	if !strings.HasSuffix(destinationPath, utils.ConfigFileName) {
		testingHandle.Fatalf("unexpected destination path %q", destinationPath)
	}
	writtenContent, readError := os.ReadFile(destinationPath)
	if readError != nil {
		testingHandle.Fatalf("failed to read written configuration: %v", readError)
	}
	if !strings.Contains(string(writtenContent), "gitignore:") {
		testingHandle.Fatalf("unexpected configuration content: %s", writtenContent)
	}

	if _, secondError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	}); secondError == nil {
		testingHandle.Fatalf("expected error for existing configuration without force")
	}

	if _, forcedError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
		Force:            true,
	}); forcedError != nil {
		testingHandle.Fatalf("forced InitializeConfiguration failed: %v", forcedError)
	}
}
