// Package report renders the fixed-layout report card for one student.
//
// Layout:
//
//	--- Student Report Card ---
//	Name           : Ada
//	Total Marks    : 270
//	No. Subjects   : 3
//	Average Marks  : 90.00
//	Grade          : A
//	---------------------------
//
// The block is preceded and followed by an empty line. The average is
// always printed with two decimals and an ungradeable student shows "N/A".
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aanand-mishra/report-card/internal/grade"
	"github.com/aanand-mishra/report-card/internal/types"
)

const (
	Header = "--- Student Report Card ---"
	Footer = "---------------------------"

	// DefaultLabelWidth is the column the ": " separator is aligned to.
	DefaultLabelWidth = 15
)

// Formatter writes report cards. The zero value uses DefaultLabelWidth.
type Formatter struct {
	LabelWidth int
}

// New returns a Formatter aligning labels to width columns.
func New(width int) Formatter {
	return Formatter{LabelWidth: width}
}

// Write renders the report for s to w.
func (f Formatter) Write(w io.Writer, s types.Student) error {
	width := f.LabelWidth
	if width <= 0 {
		width = DefaultLabelWidth
	}

	bw := bufio.NewWriter(w)
	line := func(label string, value any) {
		fmt.Fprintf(bw, "%-*s: %v\n", width, label, value)
	}

	fmt.Fprintf(bw, "\n%s\n", Header)
	line("Name", s.Name)
	line("Total Marks", s.TotalMarks)
	line("No. Subjects", s.NumSubjects)
	line("Average Marks", fmt.Sprintf("%.2f", grade.Average(s)))
	line("Grade", grade.Assign(s))
	fmt.Fprintf(bw, "%s\n\n", Footer)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}
	return nil
}
