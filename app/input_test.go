package main

import (
	"strings"
	"testing"

	"github.com/adithya11811/autocomplete/prefixtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	tree := prefixtree.New()
	for _, w := range []string{"car", "card", "care", "dog", "add"} {
		tree.Add(w)
	}

	tests := []struct {
		name  string
		input string
		want  Completion
	}{
		{name: "single match", input: "do", want: Completion{Insert: "g "}},
		{name: "exact single word", input: "dog", want: Completion{Insert: " "}},
		{name: "extends to common prefix", input: "c", want: Completion{Insert: "ar"}},
		{name: "lists when at common prefix", input: "car", want: Completion{Candidates: []string{"car", "card", "care"}}},
		{name: "no match", input: "x", want: Completion{}},
		{name: "completes last token", input: "has ad", want: Completion{Insert: "d "}},
		{name: "empty last token lists everything", input: "has ", want: Completion{Candidates: []string{"add", "car", "card", "care", "dog"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Complete(tree, tt.input))
		})
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	assert.Equal(t, "", longestCommonPrefix(nil))
	assert.Equal(t, "solo", longestCommonPrefix([]string{"solo"}))
	assert.Equal(t, "car", longestCommonPrefix([]string{"card", "care", "car"}))
	assert.Equal(t, "", longestCommonPrefix([]string{"abc", "xyz"}))
	// é and è share their first UTF-8 byte
	assert.Equal(t, "h", longestCommonPrefix([]string{"hé", "hè"}))
}

func TestRunLines(t *testing.T) {
	s, out := newTestSession("cat")

	code, err := runLines(s, strings.NewReader("add dog\nhas dog\nexit 2\nsize\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, "added 1\ndog: found\n", out.String())
}

func TestRunLinesEOF(t *testing.T) {
	s, out := newTestSession()

	code, err := runLines(s, strings.NewReader("size"))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\n", out.String())
}
