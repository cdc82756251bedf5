// Package replio contains the line reader used by mucheck's --repl mode. It
// reads one non-blank line at a time from stdin, either through
// github.com/chzyer/readline (for an interactive TTY) or a plain buffered
// reader (for piped input), mirroring the two-reader split the teacher's
// input package uses for its own command loop.
package replio

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of REPL input at a time. Implementations must
// have Close called on them before disposal.
type LineReader interface {
	// ReadLine blocks until a non-blank line is available. It returns
	// io.EOF (with an empty string) once input is exhausted.
	ReadLine() (string, error)

	// Close releases any resources the reader holds.
	Close() error
}

// DirectLineReader implements LineReader over any io.Reader. It does not
// sanitize control or escape sequences and should be used for piped input,
// not a live TTY.
type DirectLineReader struct {
	r *bufio.Reader
}

// InteractiveLineReader implements LineReader using chzyer/readline, giving the
// user history and line editing. It should be used when stdin is a TTY.
type InteractiveLineReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader wraps r in a buffered DirectLineReader.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader starts a readline.Instance with the given prompt. The
// returned reader must have Close called on it before disposal.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}
	return &InteractiveLineReader{rl: rl, prompt: prompt}, nil
}

// Close is a no-op; DirectLineReader holds no resources of its own, but
// callers should treat it as though it must be closed since other
// LineReader implementations do hold resources.
func (d *DirectLineReader) Close() error { return nil }

// Close tears down the underlying readline instance.
func (i *InteractiveLineReader) Close() error { return i.rl.Close() }

// ReadLine reads lines from the wrapped reader until one with non-whitespace
// content is found, trims it, and returns it.
func (d *DirectLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for strings.TrimSpace(line) == "" {
		line, err = d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return "", io.EOF
		}
	}

	return strings.TrimSpace(line), nil
}

// ReadLine reads lines from the readline prompt until one with
// non-whitespace content is found, trims it, and returns it.
func (i *InteractiveLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for strings.TrimSpace(line) == "" {
		line, err = i.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return "", io.EOF
			}
			return "", err
		}
	}

	return strings.TrimSpace(line), nil
}

// SetPrompt updates the prompt text shown before each line.
func (i *InteractiveLineReader) SetPrompt(p string) {
	i.prompt = p
	i.rl.SetPrompt(p)
}

// GetPrompt returns the current prompt text.
func (i *InteractiveLineReader) GetPrompt() string {
	return i.prompt
}
