// Package types defines every cross‑package data structure used by the dirtree CLI.
package types

// RunConfiguration captures the resolved options for a single dirtree run.
// It is assembled once by the CLI layer and consumed read-only afterwards.
type RunConfiguration struct {
	// Paths lists the top-level directories to render, in input order.
	Paths []string
	// All includes hidden entries (names starting with a dot).
	All bool
	// DirsOnly restricts the listing to directories.
	DirsOnly bool
	// NoIndent suppresses connector glyphs and indentation.
	NoIndent bool
	// FullPath renders canonical absolute paths instead of entry names.
	FullPath bool
	// Gitignore applies .gitignore patterns and hides the .git directory.
	Gitignore bool
	// MaxDepth bounds the traversal depth when non-nil. The bound is
	// inclusive: entries at exactly MaxDepth are rendered, their children
	// are not.
	MaxDepth *int
	// OutputFilePath selects a file sink when non-empty; otherwise the
	// rendered tree goes to standard output.
	OutputFilePath string
	// CopyToClipboard additionally places the rendered tree on the system
	// clipboard.
	CopyToClipboard bool
}

// IgnorePattern is a single parsed .gitignore line.
type IgnorePattern struct {
	// Body is the pattern text with negation and anchor markers stripped.
	Body string
	// Negated marks patterns prefixed with '!'; a matching negated pattern
	// means "do not ignore".
	Negated bool
	// AnchoredToRoot marks patterns with a leading '/'; they match the path
	// relative to the ignore file's directory exactly.
	AnchoredToRoot bool
	// DirectoryOnly marks patterns with a trailing '/'; they apply to
	// directory entries only.
	DirectoryOnly bool
}

// TreeStatistics accumulates entry counts for one top-level path. The
// counters only reflect entries that passed the inclusion filter and are
// never decremented.
type TreeStatistics struct {
	Directories int
	Files       int
}

// ValidatedPath is an input path that already passed existence checks. The
// given form is preserved for display; the absolute form backs deduplication.
type ValidatedPath struct {
	GivenPath    string
	AbsolutePath string
}
