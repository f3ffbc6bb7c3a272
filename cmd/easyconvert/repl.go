package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/units"
)

const replPrompt = "convert> "

// prompter is the part of liner.State the loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (a *App) addReplCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Convert queries interactively",
		Long: `Start an interactive session. Each line is converted as it is entered.
Tab completes unit and prefix aliases, arrow keys walk the history.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			line := liner.NewLiner()
			defer func() { _ = line.Close() }()

			line.SetCtrlCAborts(true)
			line.SetCompleter(aliasCompleter(a.registry))

			historyFile := filepath.Join(os.TempDir(), ".easyconvert_history")
			if f, err := os.Open(historyFile); err == nil {
				_, _ = line.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(historyFile); err == nil {
					_, _ = line.WriteHistory(f)
					_ = f.Close()
				}
			}()

			return a.repl(line)
		},
	})
}

// repl converts one line at a time until exit, quit or Ctrl+D.
func (a *App) repl(p prompter) error {
	fmt.Fprintln(a.out, "Type a conversion such as '10f to c'. 'exit' or Ctrl+D quits.")

	for {
		input, err := p.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.out, "^C")
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		query := strings.TrimSpace(input)
		switch query {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		p.AppendHistory(query)

		result, err := a.engine.ParseConversion(query)
		switch {
		case err == nil:
			fmt.Fprintln(a.out, renderResult(result, a.plain()))
		case errors.Is(err, conversion.ErrNoResult):
			fmt.Fprintln(a.out, renderError(fmt.Errorf("couldn't parse %q (%s)", query, conversion.FailureKind(err)), a.plain()))
		default:
			return err
		}
	}
}

// aliasCompleter completes the last word of a line against unit and prefix aliases.
func aliasCompleter(reg *units.Registry) liner.Completer {
	seen := make(map[string]bool)
	var aliases []string
	add := func(a string) {
		if !seen[a] && !strings.ContainsRune(a, ' ') {
			seen[a] = true
			aliases = append(aliases, a)
		}
	}
	for _, u := range reg.Units() {
		for _, a := range u.Aliases {
			add(a)
		}
	}
	for _, p := range reg.Prefixes() {
		for _, a := range p.Aliases {
			add(a)
		}
	}
	sort.Strings(aliases)

	return func(line string) []string {
		head, word := "", line
		if i := strings.LastIndexByte(line, ' '); i >= 0 {
			head, word = line[:i+1], line[i+1:]
		}
		if word == "" {
			return nil
		}

		var out []string
		for _, a := range aliases {
			if strings.HasPrefix(strings.ToLower(a), strings.ToLower(word)) {
				out = append(out, head+a)
			}
		}
		return out
	}
}
