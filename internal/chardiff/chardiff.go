// Package chardiff computes character-level edit scripts between two single
// lines of text.
//
// The script is an ordered slice of segments. Invariants:
//   - concatenating Equal+Delete segment text reconstructs the old line
//   - concatenating Equal+Insert segment text reconstructs the new line
//   - adjacent segments never share a kind
package chardiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Equal Kind = iota
	Insert
	Delete
)

// Segment is one run of an edit script.
type Segment struct {
	Kind Kind
	Text string
}

// Diff returns the edit script from oldLine to newLine.
//
// Identical non-empty inputs yield exactly one Equal segment; a one-sided
// input yields a single Insert or Delete segment covering the other side.
func Diff(oldLine, newLine string) []Segment {

	if oldLine == newLine {
		if oldLine == "" {
			return nil
		}
		return []Segment{{Kind: Equal, Text: oldLine}}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	return toSegments(diffs)
}

// toSegments converts diffmatchpatch output, coalescing adjacent same-kind
// runs so the merge invariant holds regardless of upstream chunking.
func toSegments(diffs []diffmatchpatch.Diff) []Segment {

	var segs []Segment

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}

		kind := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = Insert
		case diffmatchpatch.DiffDelete:
			kind = Delete
		}

		if len(segs) > 0 && segs[len(segs)-1].Kind == kind {
			segs[len(segs)-1].Text += d.Text
			continue
		}
		segs = append(segs, Segment{Kind: kind, Text: d.Text})
	}

	return segs
}

// OldText reconstructs the old line from a script.
func OldText(segs []Segment) string {
	var out string
	for _, s := range segs {
		if s.Kind != Insert {
			out += s.Text
		}
	}
	return out
}

// NewText reconstructs the new line from a script.
func NewText(segs []Segment) string {
	var out string
	for _, s := range segs {
		if s.Kind != Delete {
			out += s.Text
		}
	}
	return out
}
