package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

// TestDepthFlagValueSet verifies parsing of valid and invalid depth inputs.
func TestDepthFlagValueSet(testingHandle *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedError bool
		expectedDepth int
	}{
		{name: "zero depth", input: "0", expectedDepth: 0},
		{name: "positive depth", input: "3", expectedDepth: 3},
		{name: "surrounding whitespace", input: " 2 ", expectedDepth: 2},
		{name: "negative depth rejected", input: "-1", expectedError: true},
		{name: "non-numeric rejected", input: "deep", expectedError: true},
		{name: "empty rejected", input: "", expectedError: true},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			var selectedDepth *int
			flagValue := &depthFlagValue{selected: &selectedDepth}
			setError := flagValue.Set(testCase.input)
			if testCase.expectedError {
				if setError == nil {
					subtestHandle.Fatalf("expected error for input %q", testCase.input)
				}
				if selectedDepth != nil {
					subtestHandle.Fatalf("expected depth to stay unset, got %d", *selectedDepth)
				}
				return
			}
			if setError != nil {
				subtestHandle.Fatalf("Set(%q) failed: %v", testCase.input, setError)
			}
			if selectedDepth == nil || *selectedDepth != testCase.expectedDepth {
				subtestHandle.Fatalf("expected depth %d, got %+v", testCase.expectedDepth, selectedDepth)
			}
		})
	}
}

// TestRegisterDepthFlagDefaultsToUnset verifies that an untouched level flag
// leaves the selection nil.
func TestRegisterDepthFlagDefaultsToUnset(testingHandle *testing.T) {
	flagSet := pflag.NewFlagSet("tree", pflag.ContinueOnError)
	var selectedDepth *int
	registerDepthFlag(flagSet, &selectedDepth, levelFlagName, levelFlagShort, levelFlagUsage)

	if parseError := flagSet.Parse(nil); parseError != nil {
		testingHandle.Fatalf("Parse failed: %v", parseError)
	}
	if selectedDepth != nil {
		testingHandle.Fatalf("expected unset depth, got %d", *selectedDepth)
	}

	if parseError := flagSet.Parse([]string{"--" + levelFlagName, "2"}); parseError != nil {
		testingHandle.Fatalf("Parse with level failed: %v", parseError)
	}
	if selectedDepth == nil || *selectedDepth != 2 {
		testingHandle.Fatalf("expected depth 2, got %+v", selectedDepth)
	}
}
