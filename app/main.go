package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adithya11811/autocomplete/prefixtree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const dictEnv = "AUTOCOMPLETE_DICT"

type options struct {
	dict     string
	path     bool
	prefixes []string
	verbose  bool
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "autocomplete",
		Short:         "autocomplete is a prefix tree backed word completer",
		Long:          "autocomplete indexes a word list and completes words on Tab at an interactive prompt",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dict, "dict", "d", os.Getenv(dictEnv), "newline separated word list (env "+dictEnv+")")
	flags.BoolVar(&opts.path, "path", false, "index executable names found on $PATH")
	flags.StringArrayVarP(&opts.prefixes, "prefix", "p", nil, "print completions for prefix and exit (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func buildTree(opts *options, log *zap.SugaredLogger) (*prefixtree.Tree, error) {
	tree := prefixtree.New()

	for i := 0; i < len(builtIns); i++ {
		tree.Add(builtIns[i])
	}

	if opts.path {
		for _, exe := range getPathExecutables(os.Getenv("PATH")) {
			tree.Add(exe)
		}
		log.Debugw("indexed PATH executables", "size", tree.Size())
	}

	if opts.dict != "" {
		n, err := LoadDictionaryFile(tree, opts.dict)
		if err != nil {
			return nil, err
		}
		log.Debugw("loaded dictionary", "file", opts.dict, "lines", n, "size", tree.Size())
	}
	return tree, nil
}

func run(cmd *cobra.Command, opts *options) error {
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer log.Sync()

	tree, err := buildTree(opts, log)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(opts.prefixes) > 0 {
		for _, prefix := range opts.prefixes {
			for _, word := range sortedCompletions(tree, prefix) {
				fmt.Fprintln(out, word)
			}
		}
		return nil
	}

	session := NewSession(tree, out, log)
	in := cmd.InOrStdin()
	var code int
	if file, ok := terminalFile(in); ok {
		code = runPrompt(session, file, "> ")
	} else {
		code, err = runLines(session, in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
