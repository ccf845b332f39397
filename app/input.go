package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adithya11811/autocomplete/prefixtree"
	"golang.org/x/term"
)

// Completion is what pressing Tab does to the current input: Insert is text to
// append, Candidates is a listing to show when there is nothing to insert.
type Completion struct {
	Insert     string
	Candidates []string
}

// Complete looks up the last space separated token of input.
func Complete(tree *prefixtree.Tree, input string) Completion {
	prefix := input[strings.LastIndexByte(input, ' ')+1:]
	completions := sortedCompletions(tree, prefix)

	switch len(completions) {
	case 0:
		return Completion{}
	case 1:
		// Only one completion, finish the word and add a space
		return Completion{Insert: completions[0][len(prefix):] + " "}
	}
	if common := longestCommonPrefix(completions); len(common) > len(prefix) {
		return Completion{Insert: common[len(prefix):]}
	}
	return Completion{Candidates: completions}
}

func longestCommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	common := words[0]
	for _, w := range words[1:] {
		n := 0
		for n < len(common) && n < len(w) {
			r1, size := utf8.DecodeRuneInString(common[n:])
			r2, _ := utf8.DecodeRuneInString(w[n:])
			if r1 != r2 {
				break
			}
			n += size
		}
		common = common[:n]
	}
	return common
}

// readLine reads one line from a terminal in raw mode, completing on Tab. ok is
// false when the user pressed Ctrl-C or Ctrl-D, or reading failed.
func readLine(tree *prefixtree.Tree, in *os.File, prompt string) (string, bool) {
	var input strings.Builder

	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to set raw mode:", err)
		return "", false
	}
	defer term.Restore(fd, oldState)

	fmt.Print(prompt)

	for {
		var buf [1]byte
		n, err := in.Read(buf[:])
		if err != nil || n == 0 {
			if err != nil && err != io.EOF {
				fmt.Fprint(os.Stderr, "Read error: ", err, "\r\n")
			}
			return "", false
		}

		char := buf[0]

		switch char {
		case '\n', '\r': // Enter key
			fmt.Print("\r\n")
			return input.String(), true

		case 127, 8: // Backspace
			if input.Len() > 0 {
				curr := input.String()
				_, size := utf8.DecodeLastRuneInString(curr)
				input.Reset()
				input.WriteString(curr[:len(curr)-size])
				fmt.Print("\b \b")
			}

		case 3, 4: // Ctrl+C, Ctrl+D
			fmt.Print("\r\n")
			return "", false

		case 9: // Tab key
			completion := Complete(tree, input.String())
			switch {
			case completion.Insert != "":
				input.WriteString(completion.Insert)
				fmt.Print(completion.Insert)
			case len(completion.Candidates) > 0:
				fmt.Print("\r\n")
				for _, c := range completion.Candidates {
					fmt.Print(c, "\r\n")
				}
				redrawInput(prompt, input.String())
			default:
				fmt.Print("\a")
			}

		case 27: // Escape sequence, arrow keys are ignored
			var seq [2]byte
			n, err := in.Read(seq[:])
			if err != nil || n < 2 {
				continue
			}

		default:
			// Printable ASCII characters
			if char >= 32 && char < 127 {
				input.WriteByte(char)
				fmt.Print(string(char))
			}
		}
	}
}

func redrawInput(prompt, content string) {
	fmt.Print("\r\033[K")               // Clear line
	fmt.Printf("%s%s", prompt, content) // Print prompt and current input
}

// runLines dispatches every line of r, for input that is not a terminal.
func runLines(s *Session, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if code, exit := s.Dispatch(scanner.Text()); exit {
			return code, nil
		}
	}
	return 0, scanner.Err()
}

// terminalFile returns r as a file when it is attached to a terminal.
func terminalFile(r io.Reader) (*os.File, bool) {
	file, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil, false
	}
	return file, true
}

func runPrompt(s *Session, in *os.File, prompt string) int {
	for {
		line, ok := readLine(s.tree, in, prompt)
		if !ok {
			return 0
		}
		if code, exit := s.Dispatch(line); exit {
			return code
		}
	}
}
