package chardiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff_IdenticalInputs(t *testing.T) {
	segs := Diff("same line", "same line")
	require.Equal(t, []Segment{{Kind: Equal, Text: "same line"}}, segs)
}

func TestDiff_BothEmpty(t *testing.T) {
	require.Empty(t, Diff("", ""))
}

func TestDiff_EmptyOldIsSingleInsert(t *testing.T) {
	segs := Diff("", "brand new")
	require.Equal(t, []Segment{{Kind: Insert, Text: "brand new"}}, segs)
}

func TestDiff_EmptyNewIsSingleDelete(t *testing.T) {
	segs := Diff("all gone", "")
	require.Equal(t, []Segment{{Kind: Delete, Text: "all gone"}}, segs)
}

func TestDiff_Reconstruction(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "hello there world"},
		{"const x = 1", "const x = 2"},
		{"abc", "xyz"},
		{"prefix middle suffix", "prefix changed suffix"},
		{"tabs\tand spaces", "tabs and\tspaces"},
		{"", "non-empty"},
		{"non-empty", ""},
		{"unicode: héllo", "unicode: hello"},
	}

	for _, p := range pairs {
		segs := Diff(p[0], p[1])
		require.Equal(t, p[0], OldText(segs), "old reconstruction for %q -> %q", p[0], p[1])
		require.Equal(t, p[1], NewText(segs), "new reconstruction for %q -> %q", p[0], p[1])
	}
}

func TestDiff_AdjacentSegmentsNeverShareKind(t *testing.T) {
	segs := Diff("the quick brown fox", "the slow brown dog")
	for i := 1; i < len(segs); i++ {
		require.NotEqual(t, segs[i-1].Kind, segs[i].Kind, "segments %d and %d", i-1, i)
	}
}

func TestDiff_SimpleInsertion(t *testing.T) {
	segs := Diff("ab", "aXb")
	require.Equal(t, []Segment{
		{Kind: Equal, Text: "a"},
		{Kind: Insert, Text: "X"},
		{Kind: Equal, Text: "b"},
	}, segs)
}

func TestDiff_SimpleDeletion(t *testing.T) {
	segs := Diff("aXb", "ab")
	require.Equal(t, []Segment{
		{Kind: Equal, Text: "a"},
		{Kind: Delete, Text: "X"},
		{Kind: Equal, Text: "b"},
	}, segs)
}
