package diff

import "strings"

// OldLines returns the hunk's lines as they appear in the old file, in order
// (removed plus context). Its length must equal OldCount for a well-formed hunk.
func (h Hunk) OldLines() []string {

	var lines []string
	for _, l := range h.Lines {
		if l.Type != Added {
			lines = append(lines, l.Content)
		}
	}
	return lines
}

// NewLines returns the hunk's lines as they appear in the new file, in order
// (added plus context). Its length must equal NewCount for a well-formed hunk.
func (h Hunk) NewLines() []string {

	var lines []string
	for _, l := range h.Lines {
		if l.Type != Removed {
			lines = append(lines, l.Content)
		}
	}
	return lines
}

// String reconstructs the hunk body with its markers, for logs and debugging.
func (h Hunk) String() string {

	var b strings.Builder

	for _, l := range h.Lines {

		prefix := " "
		if l.Type == Added {
			prefix = "+"
		}
		if l.Type == Removed {
			prefix = "-"
		}

		b.WriteString(prefix + l.Content + "\n")
	}

	return b.String()
}
