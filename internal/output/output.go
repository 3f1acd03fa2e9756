// Package output delivers a fully rendered tree to its destination sink.
package output

import (
	"fmt"
	"os"
)

const (
	// errorWriteFileFormat is used when the output file cannot be written.
	errorWriteFileFormat = "writing output to %s: %w"
	// errorWriteStdoutFormat is used when standard output rejects the write.
	errorWriteStdoutFormat = "writing output to stdout: %w"

	outputFilePermissions = 0o644
)

// Write hands the complete rendered content to the selected sink. A non-empty
// outputFilePath selects a file sink written in one call; otherwise the
// content goes to standard output verbatim. Write failures are fatal for the
// run and surface to the caller.
func Write(content string, outputFilePath string) error {
	if outputFilePath == "" {
		if _, writeError := os.Stdout.WriteString(content); writeError != nil {
			return fmt.Errorf(errorWriteStdoutFormat, writeError)
		}
		return nil
	}
	if writeError := os.WriteFile(outputFilePath, []byte(content), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteFileFormat, outputFilePath, writeError)
	}
	return nil
}
