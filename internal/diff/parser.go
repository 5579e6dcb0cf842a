package diff

import (
	"regexp"
	"strconv"
	"strings"
)

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse turns unified-diff text into an ordered slice of hunks.
//
// Everything before the first hunk header is discarded; that is where the
// file-level preamble (diff --git, index, ---, +++) goes. Inside a hunk, lines
// that carry none of the three markers (for example "\ No newline at end of
// file") are dropped. A header whose groups are not numeric simply does not
// match and is skipped like any other unrecognized line. Empty input yields an
// empty slice, never an error.
func Parse(diffText string) []Hunk {

	var hunks []Hunk
	var current *Hunk

	for _, raw := range strings.Split(diffText, "\n") {

		if m := hunkHeaderRe.FindStringSubmatch(raw); m != nil {
			if current != nil {
				hunks = append(hunks, *current)
			}
			h := parseHunkHeader(m)
			current = &h
			continue
		}

		if current == nil {
			continue
		}

		if l, ok := parseLine(raw); ok {
			current.Lines = append(current.Lines, l)
		}
	}

	if current != nil {
		hunks = append(hunks, *current)
	}

	return hunks
}

// parseHunkHeader builds a Hunk from a matched header. Omitted count groups
// default to 1, per the unified-diff format.
func parseHunkHeader(m []string) Hunk {

	oldStart, _ := strconv.Atoi(m[1])
	newStart, _ := strconv.Atoi(m[3])

	oldCount := 1
	if m[2] != "" {
		oldCount, _ = strconv.Atoi(m[2])
	}

	newCount := 1
	if m[4] != "" {
		newCount, _ = strconv.Atoi(m[4])
	}

	return Hunk{
		OldStart: oldStart,
		OldCount: oldCount,
		NewStart: newStart,
		NewCount: newCount,
	}
}
