package annotate

import (
	"fmt"
	"unicode/utf8"

	"diff-annotator/internal/chardiff"
	"diff-annotator/internal/diff"
)

// Project walks every hunk and emits the annotations that describe it against
// the live document. lineCount is the document's current number of lines and
// lineText returns the live text of a 0-based line; lineText is only called
// for in-range lines.
//
// The walk keeps two cursors per hunk: the 0-based editor line (starts at
// NewStart-1, advanced by added and context lines) and the count of old-file
// lines consumed (advanced by removed and context lines). A removed line
// immediately followed by an added line is treated as a single modified line;
// in a run of removals followed by a run of additions only the last removal
// and the first addition pair up — the rule is deliberately local, not a
// block alignment.
//
// Out-of-range positions drop their single annotation and the walk continues:
// the live buffer may have diverged from the diff snapshot, and partial
// annotation beats none.
func Project(hunks []diff.Hunk, lineCount int, lineText func(int) string) *Bundle {

	b := &Bundle{}

	for _, h := range hunks {
		projectHunk(b, h, lineCount, lineText)
	}

	return b
}

func projectHunk(b *Bundle, h diff.Hunk, lineCount int, lineText func(int) string) {

	editorLine := h.NewStart - 1
	oldConsumed := 0

	for i, l := range h.Lines {
		switch l.Type {

		case diff.Added:
			if editorLine >= 0 && editorLine < lineCount {
				if i > 0 && h.Lines[i-1].Type == diff.Removed {
					projectModification(b, h.Lines[i-1].Content, l.Content, editorLine, lineText)
				} else {
					projectAddition(b, editorLine, lineText)
				}
			}
			editorLine++

		case diff.Removed:
			pairsWithNext := i+1 < len(h.Lines) && h.Lines[i+1].Type == diff.Added
			if !pairsWithNext {
				projectDeletion(b, h.OldStart+oldConsumed, l.Content, editorLine, lineCount)
			}
			oldConsumed++

		case diff.Context:
			editorLine++
			oldConsumed++
		}
	}
}

// projectModification annotates a removed+added pair as one edited line:
// a whole-line marker plus character-level insert ranges and zero-width
// deleted-text markers from the intra-line diff.
func projectModification(b *Bundle, oldContent, newContent string, editorLine int, lineText func(int) string) {

	b.ModifiedLines = append(b.ModifiedLines, wholeLine(editorLine, lineText))

	col := 0
	for _, seg := range chardiff.Diff(oldContent, newContent) {
		width := utf8.RuneCountInString(seg.Text)

		switch seg.Kind {

		case chardiff.Equal:
			col += width

		case chardiff.Insert:
			b.InsertedText = append(b.InsertedText, Annotation{
				Range: Range{
					Start: Position{Line: editorLine, Col: col},
					End:   Position{Line: editorLine, Col: col + width},
				},
			})
			col += width

		case chardiff.Delete:
			// Deleted text occupies no space in the new line: the marker is
			// zero-width at the current column and the cursor stays put.
			b.DeletedText = append(b.DeletedText, Annotation{
				Range: Range{
					Start: Position{Line: editorLine, Col: col},
					End:   Position{Line: editorLine, Col: col},
				},
				Ghost: seg.Text,
			})
		}
	}
}

// projectAddition annotates a pure added line. The insert highlight spans the
// live text rather than the hunk's recorded content, so a buffer edit racing
// the diff snapshot still gets full-line coverage.
func projectAddition(b *Bundle, editorLine int, lineText func(int) string) {

	b.AddedLines = append(b.AddedLines, wholeLine(editorLine, lineText))

	if text := lineText(editorLine); text != "" {
		b.InsertedText = append(b.InsertedText, Annotation{
			Range: Range{
				Start: Position{Line: editorLine, Col: 0},
				End:   Position{Line: editorLine, Col: utf8.RuneCountInString(text)},
			},
		})
	}
}

// projectDeletion attaches a ghost for a purely removed line to the editor
// line just above the deletion point. A deletion at the top of the file falls
// back to line 0; with no line to attach to, the ghost is dropped.
func projectDeletion(b *Bundle, oldLineNum int, content string, editorLine, lineCount int) {

	attach := editorLine - 1
	if attach < 0 {
		if lineCount == 0 {
			return
		}
		attach = 0
	}
	if attach >= lineCount {
		return
	}

	b.DeletedLineGhosts = append(b.DeletedLineGhosts, LineGhost{
		AttachLine: attach,
		Text:       fmt.Sprintf("- %d: %s", oldLineNum, content),
	})
}

func wholeLine(editorLine int, lineText func(int) string) Annotation {
	return Annotation{
		Range: Range{
			Start: Position{Line: editorLine, Col: 0},
			End:   Position{Line: editorLine, Col: utf8.RuneCountInString(lineText(editorLine))},
		},
	}
}
