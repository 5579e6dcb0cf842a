package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	require.Empty(t, Parse(""))
}

func TestParse_PreambleOnly(t *testing.T) {
	in := "diff --git a/f.go b/f.go\n" +
		"index 83db48f..bf269f4 100644\n" +
		"--- a/f.go\n" +
		"+++ b/f.go\n"
	require.Empty(t, Parse(in))
}

func TestParse_SingleHunk(t *testing.T) {
	in := "diff --git a/f.go b/f.go\n" +
		"--- a/f.go\n" +
		"+++ b/f.go\n" +
		"@@ -1,2 +1,3 @@\n" +
		" unchanged\n" +
		"-removed line\n" +
		"+added line\n" +
		"+another added line\n"

	hunks := Parse(in)
	require.Len(t, hunks, 1)

	h := hunks[0]
	require.Equal(t, 1, h.OldStart)
	require.Equal(t, 2, h.OldCount)
	require.Equal(t, 1, h.NewStart)
	require.Equal(t, 3, h.NewCount)

	require.Len(t, h.Lines, 4)
	require.Equal(t, []LineType{Context, Removed, Added, Added}, lineTypes(h))
	require.Equal(t, "unchanged", h.Lines[0].Content)
	require.Equal(t, "removed line", h.Lines[1].Content)
	require.Equal(t, "added line", h.Lines[2].Content)
	require.Equal(t, "another added line", h.Lines[3].Content)
}

func TestParse_OmittedCountsDefaultToOne(t *testing.T) {
	hunks := Parse("@@ -3 +7 @@\n-old\n+new\n")
	require.Len(t, hunks, 1)

	h := hunks[0]
	require.Equal(t, 3, h.OldStart)
	require.Equal(t, 1, h.OldCount)
	require.Equal(t, 7, h.NewStart)
	require.Equal(t, 1, h.NewCount)
}

func TestParse_MixedCountForms(t *testing.T) {
	hunks := Parse("@@ -3,2 +7 @@\n-a\n-b\n+c\n")
	require.Len(t, hunks, 1)
	require.Equal(t, 2, hunks[0].OldCount)
	require.Equal(t, 1, hunks[0].NewCount)
}

func TestParse_MultipleHunks(t *testing.T) {
	in := "@@ -1,1 +1,1 @@\n" +
		"-a\n" +
		"+b\n" +
		"@@ -10,2 +10,1 @@\n" +
		" keep\n" +
		"-drop\n"

	hunks := Parse(in)
	require.Len(t, hunks, 2)
	require.Equal(t, 1, hunks[0].NewStart)
	require.Equal(t, 10, hunks[1].NewStart)
	require.Len(t, hunks[0].Lines, 2)
	require.Len(t, hunks[1].Lines, 2)
}

func TestParse_IgnoresUnmarkedLines(t *testing.T) {
	in := "@@ -1,1 +1,1 @@\n" +
		"-old\n" +
		"+new\n" +
		"\\ No newline at end of file\n" +
		"\n"

	hunks := Parse(in)
	require.Len(t, hunks, 1)
	require.Equal(t, []LineType{Removed, Added}, lineTypes(hunks[0]))
}

func TestParse_MalformedHeaderSkipped(t *testing.T) {
	// A header with non-numeric groups never matches; its body lines land in
	// no hunk and are dropped.
	in := "@@ -x,1 +1,1 @@\n" +
		"-old\n" +
		"@@ -5,1 +5,1 @@\n" +
		"+new\n"

	hunks := Parse(in)
	require.Len(t, hunks, 1)
	require.Equal(t, 5, hunks[0].OldStart)
	require.Equal(t, []LineType{Added}, lineTypes(hunks[0]))
}

func TestParse_HunkReconstructsBothSides(t *testing.T) {
	in := "@@ -4,3 +4,4 @@\n" +
		" ctx before\n" +
		"-gone\n" +
		"+here\n" +
		"+and here\n" +
		" ctx after\n"

	hunks := Parse(in)
	require.Len(t, hunks, 1)

	h := hunks[0]
	require.Equal(t, []string{"ctx before", "gone", "ctx after"}, h.OldLines())
	require.Len(t, h.OldLines(), h.OldCount)
	require.Equal(t, []string{"ctx before", "here", "and here", "ctx after"}, h.NewLines())
	require.Len(t, h.NewLines(), h.NewCount)
}

func TestHunk_String(t *testing.T) {
	h := Hunk{Lines: []Line{
		{Type: Context, Content: "same"},
		{Type: Removed, Content: "old"},
		{Type: Added, Content: "new"},
	}}
	require.Equal(t, " same\n-old\n+new\n", h.String())
}

func lineTypes(h Hunk) []LineType {
	types := make([]LineType, 0, len(h.Lines))
	for _, l := range h.Lines {
		types = append(types, l.Type)
	}
	return types
}
