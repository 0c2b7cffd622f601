// Package prompt implements the interactive questions tekton asks when a snippet
// file is missing information, such as a snippet with no prefix.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNoAnswer is returned when the user gives no answer, typically because
// stdin was closed.
var ErrNoAnswer = errors.New("no answer given")

// Prompter asks the user questions using interactive forms.
//
// When stdin is not a terminal (e.g. a pipe or a test) the forms fall back to
// accessible mode, which reads plain lines of text.
type Prompter struct {
	stdin      io.Reader
	stdout     io.Writer
	accessible bool
}

// New returns a new [Prompter] reading answers from stdin and drawing
// questions on stdout.
func New(stdin io.Reader, stdout io.Writer) *Prompter {
	accessible := true
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		accessible = false
	}

	if accessible {
		stdin = lineReader{r: stdin}
	}

	return &Prompter{
		stdin:      stdin,
		stdout:     stdout,
		accessible: accessible,
	}
}

// Input asks for a line of non-empty text, showing detail alongside the question.
func (p *Prompter) Input(title, detail string) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(title).
		Value(&answer).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("cannot be empty")
			}

			return nil
		})

	fields := []huh.Field{input}
	if detail != "" {
		fields = []huh.Field{huh.NewNote().Title("Snippet").Description(detail), input}
	}

	if err := p.run(huh.NewGroup(fields...)); err != nil {
		return "", err
	}

	// Accessible forms give up silently at EOF
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrNoAnswer
	}

	return answer, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(title string) (bool, error) {
	var answer bool

	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	if err := p.run(huh.NewGroup(confirm)); err != nil {
		return false, err
	}

	return answer, nil
}

// run runs a single group form against the prompter's input and output.
func (p *Prompter) run(group *huh.Group) error {
	form := huh.NewForm(group).
		WithAccessible(p.accessible).
		WithInput(p.stdin).
		WithOutput(p.stdout)

	if err := form.Run(); err != nil {
		return fmt.Errorf("could not get an answer: %w", err)
	}

	return nil
}

// lineReader hands out at most one line per Read.
//
// Accessible forms start a fresh scanner for every question, a reader that
// returns more than one line at a time would lose the answers to later questions
// in the first scanner's buffer.
type lineReader struct {
	r io.Reader
}

// Read implements [io.Reader] for a [lineReader].
func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		read, err := l.r.Read(p[n : n+1])
		n += read

		if err != nil {
			return n, err
		}

		if read == 1 && p[n-1] == '\n' {
			break
		}
	}

	return n, nil
}
