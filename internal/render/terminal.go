package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"diff-annotator/internal/annotate"
)

// Terminal paints a document with its annotations as ANSI text, one document
// line per output line, deleted-line ghosts interleaved below their attach
// line. width caps the display cells of unstyled lines; 0 means no cap.
type Terminal struct {
	theme Theme
	width int
}

func NewTerminal(theme Theme, width int) *Terminal {
	return &Terminal{theme: theme, width: width}
}

const strike = "\x1b[9m"

func (t *Terminal) Render(lines []string, b *annotate.Bundle) string {

	added := lineSet(b.AddedLines)
	modified := lineSet(b.ModifiedLines)

	inserts := make(map[int][]annotate.Range)
	for _, a := range b.InsertedText {
		inserts[a.Range.Start.Line] = append(inserts[a.Range.Start.Line], a.Range)
	}

	markers := make(map[int][]annotate.Annotation)
	for _, a := range b.DeletedText {
		markers[a.Range.Start.Line] = append(markers[a.Range.Start.Line], a)
	}

	ghosts := make(map[int][]annotate.LineGhost)
	for _, g := range b.DeletedLineGhosts {
		ghosts[g.AttachLine] = append(ghosts[g.AttachLine], g)
	}

	numWidth := len(fmt.Sprint(len(lines)))

	var out strings.Builder
	for i, line := range lines {

		marker := " "
		switch {
		case added[i]:
			marker = ansi(t.theme.AddedLineBorder) + "+" + ansiReset
		case modified[i]:
			marker = ansi(t.theme.ModifiedLineBorder) + "~" + ansiReset
		}

		body := line
		styled := len(inserts[i]) > 0 || len(markers[i]) > 0
		if styled {
			body = t.paintLine(line, inserts[i], markers[i])
		} else if t.width > 0 {
			body = runewidth.Truncate(body, t.width, "…")
		}

		fmt.Fprintf(&out, "%*d %s %s\n", numWidth, i+1, marker, body)

		for _, g := range ghosts[i] {
			text := g.Text
			if t.width > 0 {
				text = runewidth.Truncate(text, t.width, "…")
			}
			fmt.Fprintf(&out, "%*s %s\n", numWidth+2, "",
				ansi(t.theme.GhostLineColor)+text+ansiReset)
		}
	}

	return out.String()
}

// paintLine styles one line: inserted ranges get the insert color, zero-width
// deleted-text markers surface their ghost payload struck through at the
// marker column.
func (t *Terminal) paintLine(line string, inserts []annotate.Range, markers []annotate.Annotation) string {

	runes := []rune(line)

	inserted := make([]bool, len(runes))
	for _, r := range inserts {
		for c := r.Start.Col; c < r.End.Col && c < len(runes); c++ {
			inserted[c] = true
		}
	}

	ghostAt := make(map[int][]string)
	for _, m := range markers {
		col := m.Range.Start.Col
		if col > len(runes) {
			col = len(runes)
		}
		ghostAt[col] = append(ghostAt[col], m.Ghost)
	}

	insertColor := ansi(t.theme.InsertedTextColor)
	deleteColor := ansi(t.theme.DeletedTextColor)

	var b strings.Builder
	for col := 0; col <= len(runes); col++ {

		for _, ghost := range ghostAt[col] {
			b.WriteString(deleteColor + strike + ghost + ansiReset)
		}

		if col == len(runes) {
			break
		}

		if inserted[col] {
			b.WriteString(insertColor + string(runes[col]) + ansiReset)
			continue
		}
		b.WriteRune(runes[col])
	}

	return b.String()
}

func lineSet(anns []annotate.Annotation) map[int]bool {
	set := make(map[int]bool, len(anns))
	for _, a := range anns {
		set[a.Range.Start.Line] = true
	}
	return set
}
