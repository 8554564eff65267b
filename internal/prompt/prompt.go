// Package prompt asks the user questions on the terminal.
//
// Every question blocks until it is answered. Text questions may carry a
// validator; the question is asked again until the validator accepts the
// answer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/opmodel/create-vite/internal/output"
)

// ErrAborted is returned when the user interrupts a prompt (ctrl+c) or the
// input ends before a question is answered.
var ErrAborted = errors.New("prompt aborted")

// TextQuestion is a free-form question.
type TextQuestion struct {
	// Message is shown before the input.
	Message string

	// Default pre-fills the answer.
	Default string

	// Validate rejects an answer with a message shown to the user. Optional.
	Validate func(string) error
}

// ConfirmQuestion is a yes/no question.
type ConfirmQuestion struct {
	Message string
	Default bool

	// Destructive marks questions whose yes answer deletes data. Their
	// title is highlighted.
	Destructive bool
}

// Prompter asks questions and blocks until they are answered.
type Prompter interface {
	Text(q TextQuestion) (string, error)
	Confirm(q ConfirmQuestion) (bool, error)
}

// HuhPrompter asks questions with huh forms. In accessible mode the forms
// fall back to plain line-based input, which works without a terminal.
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool

	// lines is shared by every accessible form so each one consumes
	// exactly one line of in.
	lines *bufio.Reader
}

// NewHuhPrompter creates a prompter reading from in and writing to out.
// A nil in reads from os.Stdin.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	if in == nil {
		in = os.Stdin
	}
	p := &HuhPrompter{in: in, out: out, accessible: accessible}
	if accessible {
		p.lines = bufio.NewReader(in)
	}
	return p
}

// Text implements Prompter.
func (p *HuhPrompter) Text(q TextQuestion) (string, error) {
	for {
		value := q.Default

		input := huh.NewInput().
			Title(q.Message).
			Value(&value)
		if q.Validate != nil {
			input = input.Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" && p.accessible {
					// An empty line keeps the default.
					s = q.Default
				}
				return q.Validate(s)
			})
		}

		if err := p.run(input); err != nil {
			return "", err
		}

		// Accessible fields hand back a rejected answer once their line is
		// used up, so the question is asked again on the next line.
		answer := strings.TrimSpace(value)
		if q.Validate == nil || q.Validate(answer) == nil {
			return answer, nil
		}
	}
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(q ConfirmQuestion) (bool, error) {
	yes := q.Default

	title := q.Message
	if q.Destructive {
		title = output.StyleWarn.Render(title)
	}

	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&yes)

	if err := p.run(confirm); err != nil {
		return false, err
	}
	return yes, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithShowHelp(false)
	if p.out != nil {
		form = form.WithOutput(p.out)
	}

	if !p.accessible {
		return formError(form.WithInput(p.in).Run())
	}

	line := &lineReader{src: p.lines}
	if err := form.WithInput(line).Run(); err != nil {
		return formError(err)
	}
	switch {
	case line.eof:
		return ErrAborted
	case line.err != nil:
		return fmt.Errorf("reading answer: %w", line.err)
	}
	return nil
}

// formError maps a user abort to ErrAborted.
func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// lineReader serves a single line of src and then reports io.EOF. Accessible
// huh fields wrap their input in a fresh scanner, which would otherwise read
// ahead and swallow the answers to later questions. The line is read on the
// first Read so the question is printed before the input blocks.
type lineReader struct {
	src  *bufio.Reader
	buf  []byte
	read bool

	// eof is set when src had nothing left for this question.
	eof bool
	err error
}

func (r *lineReader) Read(b []byte) (int, error) {
	if !r.read {
		r.read = true
		line, err := r.src.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF) && line == "":
			r.eof = true
		case errors.Is(err, io.EOF):
			line += "\n"
		case err != nil:
			r.err = err
			return 0, err
		}
		r.buf = []byte(line)
	}

	if len(r.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(b, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Defaults answers every question with its default without asking.
// A text default rejected by its validator is reported as an error.
type Defaults struct{}

// Text implements Prompter.
func (Defaults) Text(q TextQuestion) (string, error) {
	if q.Validate != nil {
		if err := q.Validate(q.Default); err != nil {
			return "", err
		}
	}
	return q.Default, nil
}

// Confirm implements Prompter.
func (Defaults) Confirm(q ConfirmQuestion) (bool, error) {
	return q.Default, nil
}
