package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks the user a yes/no question and reports the answer.
// It is an interface so orchestration logic can run non-interactively in
// tests (and in automation) with a scripted implementation instead of
// blocking on the real standard input stream.
type Confirmer interface {
	Confirm(question string) bool
}

// Terminal is the interactive Confirmer. It prints the question followed by
// a "[Y/n]" suffix and blocks until a line of input is read. There is no
// timeout; the prompt waits indefinitely for a newline-terminated answer.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewTerminal returns a Terminal prompting on stdout and reading stdin.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Confirm asks question and reads one line. Empty input defaults to yes;
// any answer beginning with "y" or "Y" is yes; everything else is no.
// A read failure (e.g. closed input stream) is treated as no, since we
// cannot assume consent without an answer.
func (t *Terminal) Confirm(question string) bool {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}

	fmt.Fprintf(t.Out, "%s [Y/n] ", question)

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	// Pressing enter with no answer accepts the default.
	if answer == "" {
		return true
	}
	return strings.HasPrefix(answer, "y")
}
