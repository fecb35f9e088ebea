package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Diagnostics printed before a prompt is repeated.
const (
	MsgEmptyInput    = "Input cannot be empty. Please try again."
	MsgInvalidNumber = "Invalid input. Please enter a valid number."
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInvalidNumber = errors.New("input is not a non-negative 32-bit integer")
)

// validate is shared by every prompt in the package.
var validate = validator.New()

// ValidateText accepts any text that is non-empty once surrounding
// whitespace is removed.
func ValidateText(s string) error {
	if err := validate.Var(strings.TrimSpace(s), "required"); err != nil {
		return ErrEmptyInput
	}
	return nil
}

// ParseCount parses s as a plain base-10 unsigned integer that fits in
// 32 bits. ParseUint takes no sign, prefix or underscore, so "-5", "+5",
// "3.14", "0x10" and "1_000" are rejected, as is a value above 4294967295.
func ParseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		// keep ErrSyntax or ErrRange only; NumError quotes the input
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return uint32(n), nil
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Prompter asks questions on out and reads the answers from in. Every
// prompt is retried until the answer is valid; there is no attempt limit.
type Prompter struct {
	in  *Reader
	out io.Writer
	log *slog.Logger
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer, log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.Default()
	}
	return &Prompter{
		in:  NewReader(in),
		out: out,
		log: log,
	}
}

// String prompts until a non-empty line is entered and returns it trimmed.
// A read failure is returned as-is and ends the session.
func (p *Prompter) String(prompt string) (string, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}

		if err := ValidateText(line); err != nil {
			p.log.Debug("rejected text input", slog.String("prompt", prompt))
			if err := p.say(MsgEmptyInput); err != nil {
				return "", err
			}
			continue
		}
		return line, nil
	}
}

// Uint prompts until a non-negative 32-bit integer is entered.
// A read failure is returned as-is and ends the session.
func (p *Prompter) Uint(prompt string) (uint32, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}

		n, err := ParseCount(line)
		if err != nil {
			p.log.Debug("rejected numeric input",
				slog.String("prompt", prompt),
				slog.String("error", err.Error()))
			if err := p.say(MsgInvalidNumber); err != nil {
				return 0, err
			}
			continue
		}
		return n, nil
	}
}

// ask writes the prompt, makes sure it is visible, then blocks on input.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("console: write prompt: %w", err)
	}
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", fmt.Errorf("console: flush prompt: %w", err)
		}
	}
	return p.in.ReadLine()
}

// say prints a diagnostic line before the prompt is repeated.
func (p *Prompter) say(msg string) error {
	if _, err := fmt.Fprintln(p.out, msg); err != nil {
		return fmt.Errorf("console: write diagnostic: %w", err)
	}
	return nil
}
