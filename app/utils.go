package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adithya11811/autocomplete/prefixtree"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var builtIns = []string{"add", "has", "words", "size", "help", "exit"}

// Session holds the tree a prompt works against and where command output goes.
type Session struct {
	tree *prefixtree.Tree
	out  io.Writer
	log  *zap.SugaredLogger
}

func NewSession(tree *prefixtree.Tree, out io.Writer, log *zap.SugaredLogger) *Session {
	return &Session{tree: tree, out: out, log: log}
}

// Dispatch runs one input line. It returns true with an exit code when the
// line asked to leave the prompt.
func (s *Session) Dispatch(line string) (int, bool) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return 0, false
	}
	switch argv[0] {
	case "add":
		s.AddCommand(argv)
	case "has":
		s.HasCommand(argv)
	case "words":
		s.WordsCommand(argv)
	case "size":
		fmt.Fprintf(s.out, "%d\n", s.tree.Size())
	case "help":
		s.HelpCommand()
	case "exit":
		return ExitCode(argv), true
	default:
		s.printLookup(strings.TrimSpace(line))
	}
	return 0, false
}

func (s *Session) AddCommand(argv []string) {
	if len(argv) < 2 {
		fmt.Fprintln(s.out, "add: missing argument")
		return
	}
	added := 0
	for _, word := range argv[1:] {
		if !s.tree.Contains(word) {
			s.tree.Add(word)
			added++
		}
	}
	s.log.Debugw("added words", "new", added, "size", s.tree.Size())
	fmt.Fprintf(s.out, "added %d\n", added)
}

func (s *Session) HasCommand(argv []string) {
	if len(argv) < 2 {
		fmt.Fprintln(s.out, "has: missing argument")
		return
	}
	for _, word := range argv[1:] {
		s.printLookup(word)
	}
}

func (s *Session) WordsCommand(argv []string) {
	prefix := ""
	if len(argv) > 1 {
		prefix = argv[1]
	}
	for _, word := range sortedCompletions(s.tree, prefix) {
		fmt.Fprintln(s.out, word)
	}
}

func (s *Session) HelpCommand() {
	fmt.Fprintln(s.out, "add <word>...   add words to the index")
	fmt.Fprintln(s.out, "has <word>...   check whether words are indexed")
	fmt.Fprintln(s.out, "words [prefix]  list indexed words starting with prefix")
	fmt.Fprintln(s.out, "size            number of indexed words")
	fmt.Fprintln(s.out, "help            show this message")
	fmt.Fprintln(s.out, "exit [code]     leave the prompt")
}

func (s *Session) printLookup(word string) {
	if s.tree.Contains(word) {
		fmt.Fprintf(s.out, "%s: found\n", word)
	} else {
		fmt.Fprintf(s.out, "%s: not found\n", word)
	}
}

func ExitCode(argv []string) int {
	code := 0
	if len(argv) > 1 {
		argCode, err := strconv.Atoi(argv[1])
		if err == nil {
			code = argCode
		}
	}
	return code
}

func sortedCompletions(tree *prefixtree.Tree, prefix string) []string {
	words := tree.WordsForPrefix(prefix)
	slices.Sort(words)
	return words
}

// LoadDictionary adds one word per line from r. Blank lines and lines starting
// with '#' are skipped.
func LoadDictionary(tree *prefixtree.Tree, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tree.Add(line)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading dictionary: %w", err)
	}
	return count, nil
}

func LoadDictionaryFile(tree *prefixtree.Tree, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary: %w", err)
	}
	defer file.Close()
	return LoadDictionary(tree, file)
}

// getPathExecutables returns the distinct names of executable files in the
// directories of pathEnv.
func getPathExecutables(pathEnv string) []string {
	seen := make(map[string]struct{})
	var executables []string

	for _, dir := range filepath.SplitList(pathEnv) {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, file := range files {
			if !file.Type().IsRegular() && file.Type()&os.ModeSymlink == 0 {
				continue
			}
			// Stat so symlinks report the mode of their target
			info, err := os.Stat(filepath.Join(dir, file.Name()))
			if err != nil || !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
				continue
			}
			name := file.Name()
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				executables = append(executables, name)
			}
		}
	}
	return executables
}
