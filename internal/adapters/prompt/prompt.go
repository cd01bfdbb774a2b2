// Package prompt asks yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// ErrNonInteractive is returned when a question is asked without a terminal.
var ErrNonInteractive = zerr.New("cannot prompt, input is not interactive")

// Prompter implements ports.Prompter.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a Prompter on stdin and stderr. It is interactive only when stdin is a
// terminal and the CI environment variable is not set.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())) && !isCI(os.Getenv("CI")))
}

func isCI(v string) bool {
	return v == "true" || v == "1"
}

// NewWithIO creates a Prompter with explicit streams.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// Interactive reports whether a user can answer prompts.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Confirm asks question and returns true for a yes answer. Anything else, including
// an empty line, is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if !p.interactive {
		return false, zerr.With(zerr.Wrap(ErrNonInteractive, "prompt skipped"), "question", question)
	}

	if _, err := fmt.Fprintf(p.out, "%s (y/N) ", question); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.line == "" {
			if errors.Is(a.err, io.EOF) {
				return false, nil
			}
			return false, zerr.Wrap(a.err, "failed to read answer")
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
