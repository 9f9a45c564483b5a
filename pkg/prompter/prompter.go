// Package prompter collects the interactive stdin prompts used by the
// command layer, including the line-oriented frontend for suggestion
// widgets.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/focalhq/cli/pkg/suggest"
	"golang.org/x/term"
)

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptPassword prompts user for a password (hidden input)
func PromptPassword(label string) (string, error) {
	fmt.Print(label)

	// Read password without echoing
	bytepw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	fmt.Println() // New line after password input

	return string(bytepw), nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Print(label + " (y/n) ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSuggest runs an interactive suggestion loop on the terminal. Each
// line is one action: text re-queries, a number commits that row, "-N"
// removes the Nth selection (multi-select), and an empty line finishes.
//
// It returns the committed selections and the input field's final text.
// Single-select widgets commit at most one item and finish on commit.
func PromptSuggest(label string, query suggest.QueryFunc, opts suggest.Options) ([]suggest.Item, string, error) {
	return promptSuggest(label, query, opts, os.Stdin, os.Stdout)
}

func promptSuggest(label string, query suggest.QueryFunc, opts suggest.Options, in io.Reader, out io.Writer) ([]suggest.Item, string, error) {
	sink := &termSink{out: out, rendered: make(chan struct{}, 1)}

	var committed *suggest.Item
	userCommit := opts.OnCommit
	opts.OnCommit = func(item suggest.Item) {
		committed = &item
		if userCommit != nil {
			userCommit(item)
		}
	}

	w := suggest.New(query, sink, opts)

	minLen := opts.MinQueryLen
	if minLen <= 0 {
		minLen = suggest.DefaultMinQueryLen
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		if opts.MultiSelect {
			debounce = suggest.DefaultMultiDebounce
		} else {
			debounce = suggest.DefaultDebounce
		}
	}
	queryTimeout := opts.QueryTimeout
	if queryTimeout <= 0 {
		queryTimeout = suggest.DefaultQueryTimeout
	}

	fmt.Fprintln(out, label)
	fmt.Fprintln(out, "Type to search, a number to pick, empty line to finish.")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, "", err
		}
		line = strings.TrimSpace(line)

		if line == "" {
			break
		}

		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 {
			w.CommitAt(n - 1)
			if committed != nil && !opts.MultiSelect {
				break
			}
			continue
		}

		if opts.MultiSelect && strings.HasPrefix(line, "-") {
			if n, convErr := strconv.Atoi(line[1:]); convErr == nil && n >= 1 {
				selections := w.Selections()
				if n <= len(selections) {
					w.Remove(selections[n-1].ID)
				}
				continue
			}
		}

		sink.drain()
		w.Input(line)

		if len([]rune(line)) >= minLen {
			// Block until the debounced fetch renders so the next
			// prompt appears below the candidate rows.
			select {
			case <-sink.rendered:
				if len(w.Suggestions()) == 0 {
					fmt.Fprintln(out, "  (no matches)")
				}
			case <-time.After(debounce + queryTimeout + time.Second):
				fmt.Fprintln(out, "  (no matches)")
			}
		}

		if err == io.EOF {
			break
		}
	}

	if committed != nil && !opts.MultiSelect {
		return []suggest.Item{*committed}, w.Value(), nil
	}
	return w.Selections(), w.Value(), nil
}

// termSink renders widget updates as plain lines. The prompt loop blocks on
// rendered while a fetch is pending, so writes do not interleave with it.
type termSink struct {
	out      io.Writer
	rendered chan struct{}
}

func (s *termSink) ShowSuggestions(items []suggest.Item) {
	for i, it := range items {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, it.Name)
	}

	select {
	case s.rendered <- struct{}{}:
	default:
	}
}

func (s *termSink) ShowSelections(items []suggest.Item) {
	if len(items) == 0 {
		fmt.Fprintln(s.out, "  Selected: (none)")
		return
	}

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	fmt.Fprintf(s.out, "  Selected: %s\n", strings.Join(names, ", "))
}

func (s *termSink) SetInput(string) {}

func (s *termSink) drain() {
	select {
	case <-s.rendered:
	default:
	}
}
