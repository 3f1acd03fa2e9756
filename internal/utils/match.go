package utils

// MatchesWildcard reports whether text matches pattern in full. The pattern
// language supports '*' (zero or more characters) and '?' (exactly one
// character); every other rune matches itself. Matching always covers the
// whole text, never a substring.
//
// The implementation is the iterative two-pointer form: on a mismatch after
// a '*', the star's match is widened by one character and scanning resumes,
// which keeps the worst case polynomial instead of the exponential recursive
// search the same grammar naively invites.
func MatchesWildcard(patternValue string, textValue string) bool {
	patternRunes := []rune(patternValue)
	textRunes := []rune(textValue)

	patternIndex := 0
	textIndex := 0
	lastStarPatternIndex := -1
	lastStarTextIndex := 0

	for textIndex < len(textRunes) {
		switch {
		case patternIndex < len(patternRunes) && (patternRunes[patternIndex] == '?' || patternRunes[patternIndex] == textRunes[textIndex]):
			patternIndex++
			textIndex++
		case patternIndex < len(patternRunes) && patternRunes[patternIndex] == '*':
			lastStarPatternIndex = patternIndex
			lastStarTextIndex = textIndex
			patternIndex++
		case lastStarPatternIndex >= 0:
			patternIndex = lastStarPatternIndex + 1
			lastStarTextIndex++
			textIndex = lastStarTextIndex
		default:
			return false
		}
	}

	// Trailing stars may absorb the remaining pattern at end-of-text.
	for patternIndex < len(patternRunes) && patternRunes[patternIndex] == '*' {
		patternIndex++
	}
	return patternIndex == len(patternRunes)
}
