// Package prefixtree implements a trie of words used as an in-memory index for
// autocompletion.
//
// Words are treated as sequences of runes. A byte that is not part of valid
// UTF-8 gets an edge of its own, so distinct byte strings never share a node.
// A Tree is not safe for concurrent use: callers must serialize Add against
// every other method.
package prefixtree

import (
	"iter"
	"unicode/utf8"
)

// key labels an edge. Valid runes are keyed as themselves; an invalid byte b
// is keyed as -1-b, outside the rune range.
type key = rune

// nextKey decodes the edge key at the start of s and the number of bytes it
// consumed.
func nextKey(s string) (key, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return -1 - key(s[0]), 1
	}
	return r, size
}

func appendKey(buf []byte, k key) []byte {
	if k < 0 {
		return append(buf, byte(-1-k))
	}
	return utf8.AppendRune(buf, k)
}

type node struct {
	children map[key]*node
	isWord   bool
}

func newNode() *node {
	return &node{
		children: make(map[key]*node),
	}
}

// Tree is a prefix tree. The zero value is not usable, create one with New.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{
		root: newNode(),
	}
}

// Add stores word in the tree. Adding a word that is already present has no
// effect. The empty word is accepted and marks the root.
func (t *Tree) Add(word string) {
	n := t.root
	for len(word) > 0 {
		k, size := nextKey(word)
		word = word[size:]
		child, exists := n.children[k]
		if !exists {
			child = newNode()
			n.children[k] = child
		}
		n = child
	}
	if !n.isWord {
		n.isWord = true
		t.size++
	}
}

// Contains reports whether word was added. A prefix of a stored word is not
// itself contained unless it was added too.
func (t *Tree) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.isWord
}

// HasPrefix reports whether at least one stored word starts with prefix.
func (t *Tree) HasPrefix(prefix string) bool {
	n := t.find(prefix)
	if n == nil {
		return false
	}
	// Nodes are only created by Add, so a leaf is always a word.
	return n.isWord || len(n.children) > 0
}

// WordsForPrefix returns every stored word starting with prefix, including
// prefix itself if it is a word. The order is unspecified. An empty prefix
// returns all words; a prefix no word starts with returns nil.
func (t *Tree) WordsForPrefix(prefix string) []string {
	var results []string
	for word := range t.Words(prefix) {
		results = append(results, word)
	}
	return results
}

// Words returns a sequence over the same words as WordsForPrefix. The subtree
// is walked lazily, so stopping early skips the rest of it.
func (t *Tree) Words(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		anchor := t.find(prefix)
		if anchor == nil {
			return
		}
		walk(anchor, []byte(prefix), yield)
	}
}

// Size returns the number of distinct words stored.
func (t *Tree) Size() int {
	return t.size
}

// find follows prefix from the root and returns the node it ends on, or nil if
// an edge is missing.
func (t *Tree) find(prefix string) *node {
	n := t.root
	for len(prefix) > 0 {
		k, size := nextKey(prefix)
		prefix = prefix[size:]
		child, exists := n.children[k]
		if !exists {
			return nil
		}
		n = child
	}
	return n
}

type frame struct {
	n     *node
	depth int
	k     key
}

// walk visits the subtree under anchor depth first using an explicit stack.
// buf holds the bytes of the path leading to anchor and is reused as the
// scratch word for every node below it.
func walk(anchor *node, buf []byte, yield func(string) bool) {
	if anchor.isWord && !yield(string(buf)) {
		return
	}

	stack := make([]frame, 0, len(anchor.children))
	for k, child := range anchor.children {
		stack = append(stack, frame{n: child, depth: len(buf), k: k})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		buf = appendKey(buf[:top.depth], top.k)
		if top.n.isWord && !yield(string(buf)) {
			return
		}
		for k, child := range top.n.children {
			stack = append(stack, frame{n: child, depth: len(buf), k: k})
		}
	}
}
