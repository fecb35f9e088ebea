// Package console implements the interactive side of the report card
// generator: reading trimmed lines from the terminal and the prompt
// loops that keep asking until the input is well-formed.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrRead is wrapped around every failure of the underlying input
	// stream, including end-of-input. Callers treat it as fatal.
	ErrRead = errors.New("console: read failed")

	// ErrInvalidUTF8 is the cause reported for a line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Reader reads one line at a time from an input stream.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r in a line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine reads exactly one line and returns it with leading and trailing
// whitespace (including the line terminator) removed.
//
// A last line that ends without a terminator is still returned; the read
// after it fails with io.EOF wrapped in ErrRead. A line that is not valid
// UTF-8 is a read failure too.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w: %w", ErrRead, ErrInvalidUTF8)
	}
	return strings.TrimSpace(line), nil
}
