// Package prompt asks the user for values and confirmations on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("prompt: no input")

// Prompter asks for required values and y/N confirmations.
type Prompter interface {
	// Ask repeats label until a non-empty answer is given.
	Ask(label string) (string, error)
	// Confirm reports whether the answer to message was yes.
	Confirm(message string) (bool, error)
}

// Terminal reads answers line by line from in and writes prompts to out.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Terminal prompter.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (t *Terminal) Ask(label string) (string, error) {
	for {
		fmt.Fprintf(t.out, "%s: ", label)
		answer, err := t.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(t.out, "Error: a value is required")
	}
}

func (t *Terminal) Confirm(message string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N]: ", message)
	answer, err := t.readLine()
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
