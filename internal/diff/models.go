package diff

// Hunk is one @@-delimited block of a unified diff.
//
// OldStart/NewStart are the 1-based first line numbers this hunk covers in the
// old and new file. OldCount/NewCount are the number of old/new lines the hunk
// spans; a header that omits a count means 1.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Line is a single body line of a hunk, without its one-character marker.
type Line struct {
	Type    LineType
	Content string
}

type LineType string

const (
	Added   LineType = "added"
	Removed LineType = "removed"
	Context LineType = "context"
)
