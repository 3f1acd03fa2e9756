package utils_test

import (
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

// TestMatchesWildcard verifies full-string wildcard matching for '*' and '?'.
func TestMatchesWildcard(testingHandle *testing.T) {
	testCases := []struct {
		name          string
		patternValue  string
		textValue     string
		expectedMatch bool
	}{
		{name: "star suffix matches", patternValue: "*.txt", textValue: "a.txt", expectedMatch: true},
		{name: "match is not a substring", patternValue: "*.txt", textValue: "a.txt.bak", expectedMatch: false},
		{name: "question mark matches one character", patternValue: "a?c", textValue: "abc", expectedMatch: true},
		{name: "question mark requires a character", patternValue: "a?c", textValue: "ac", expectedMatch: false},
		{name: "literal match", patternValue: "build", textValue: "build", expectedMatch: true},
		{name: "literal mismatch", patternValue: "build", textValue: "built", expectedMatch: false},
		{name: "star matches empty", patternValue: "a*b", textValue: "ab", expectedMatch: true},
		{name: "star matches many", patternValue: "a*b", textValue: "axxyyb", expectedMatch: true},
		{name: "consecutive stars", patternValue: "a**b", textValue: "ab", expectedMatch: true},
		{name: "trailing stars absorb nothing", patternValue: "ab**", textValue: "ab", expectedMatch: true},
		{name: "lone star matches everything", patternValue: "*", textValue: "anything", expectedMatch: true},
		{name: "empty pattern matches empty text", patternValue: "", textValue: "", expectedMatch: true},
		{name: "empty pattern rejects text", patternValue: "", textValue: "a", expectedMatch: false},
		{name: "star backtracks across repeats", patternValue: "*ab*ab", textValue: "abxabxab", expectedMatch: true},
		{name: "question mark spans one multibyte rune", patternValue: "?.txt", textValue: "ä.txt", expectedMatch: true},
		{name: "mixed wildcards", patternValue: "f?o*r", textValue: "foobar", expectedMatch: true},
		{name: "pattern longer than text", patternValue: "abc?", textValue: "abc", expectedMatch: false},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			actualMatch := utils.MatchesWildcard(testCase.patternValue, testCase.textValue)
			if actualMatch != testCase.expectedMatch {
				subtestHandle.Fatalf("MatchesWildcard(%q, %q) = %v, want %v", testCase.patternValue, testCase.textValue, actualMatch, testCase.expectedMatch)
			}
		})
	}
}
