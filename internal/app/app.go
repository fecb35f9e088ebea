// Package app runs one report card session end to end:
//
//  1. Greet the user
//  2. Prompt for name, total marks and number of subjects
//  3. Build and validate the Student
//  4. Print the report card
//  5. Say goodbye
//
// Every step writes to the same output stream, so the whole session can be
// driven from tests with an in-memory reader and buffer.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/report-card/internal/console"
	"github.com/aanand-mishra/report-card/internal/grade"
	"github.com/aanand-mishra/report-card/internal/report"
	"github.com/aanand-mishra/report-card/internal/types"
)

const (
	Welcome  = "Welcome to the Student Report Card Generator!"
	Farewell = "Thank you for using the Student Report Card Generator!"

	PromptName     = "Enter student's name: "
	PromptMarks    = "Enter total marks: "
	PromptSubjects = "Enter number of subjects: "
)

// Session holds what one run needs besides its input and output.
type Session struct {
	Log       *slog.Logger
	Formatter report.Formatter
}

// Run executes the session reading answers from in and writing everything
// else to out. The only error it returns is a fatal one, a failed console
// read or write; bad answers are retried inside the prompts.
func (s Session) Run(in io.Reader, out io.Writer) error {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}

	if _, err := fmt.Fprintln(out, Welcome); err != nil {
		return fmt.Errorf("app.Run: welcome: %w", err)
	}

	p := console.NewPrompter(in, out, log)

	name, err := p.String(PromptName)
	if err != nil {
		return fmt.Errorf("app.Run: name: %w", err)
	}
	totalMarks, err := p.Uint(PromptMarks)
	if err != nil {
		return fmt.Errorf("app.Run: total marks: %w", err)
	}
	numSubjects, err := p.Uint(PromptSubjects)
	if err != nil {
		return fmt.Errorf("app.Run: number of subjects: %w", err)
	}

	student := types.NewStudent(name, totalMarks, numSubjects)
	if err := student.Validate(); err != nil {
		return fmt.Errorf("app.Run: invalid student: %w", err)
	}

	log.Debug("student collected",
		slog.Float64("average", grade.Average(student)),
		slog.String("grade", grade.Assign(student).String()))

	if err := s.Formatter.Write(out, student); err != nil {
		return fmt.Errorf("app.Run: report: %w", err)
	}

	if _, err := fmt.Fprintln(out, Farewell); err != nil {
		return fmt.Errorf("app.Run: farewell: %w", err)
	}
	return nil
}
