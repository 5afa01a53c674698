package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInputClosed     = errors.New("input closed")
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// invalidInputError is a recoverable answer problem: the message is shown
// and the question is asked again.
type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string {
	return e.msg
}

func invalidInput(format string, args ...any) error {
	return &invalidInputError{msg: fmt.Sprintf(format, args...)}
}

type lineResult struct {
	line string
	err  error
}

// Prompter asks questions on out and reads answers from in, one line each.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	styles      *Styles
	maxAttempts int
	pending     chan lineResult
}

func NewPrompter(in io.Reader, out io.Writer, styles *Styles, maxAttempts int) *Prompter {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		styles:      styles,
		maxAttempts: maxAttempts,
	}
}

// Ask prints question and hands each answer to accept until it returns nil.
// Answers rejected with an invalid input error are reported and retried, up
// to the attempt limit. Any other error from accept is returned right away.
func (p *Prompter) Ask(ctx context.Context, question string, accept func(answer string) error) error {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		p.styles.Prompt.Fprintln(p.out, question)

		answer, err := p.readLine(ctx)
		if err != nil {
			return err
		}

		err = accept(answer)
		if err == nil {
			return nil
		}

		var invalid *invalidInputError
		if !errors.As(err, &invalid) {
			return err
		}
		p.styles.Error.Fprintln(p.out, invalid.msg)
	}
	return ErrTooManyAttempts
}

// readLine returns the next trimmed line. The read runs in its own
// goroutine so a cancelled context does not wait for the user; the line
// is kept for the next call in that case.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("read input: %w", res.err)
			}
			// a last line without newline still counts
			if res.line == "" {
				return "", ErrInputClosed
			}
		}
		return strings.TrimSpace(res.line), nil
	}
}
