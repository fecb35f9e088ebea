// Package grade derives the average and letter grade for a student.
// Both operations are pure and total over every types.Student value.
package grade

import "github.com/aanand-mishra/report-card/internal/types"

// Grade is one of the five fixed report-card categories.
type Grade int

const (
	Invalid Grade = iota // no subjects, nothing to grade
	A
	B
	C
	D
)

// Lower bounds of each band, inclusive.
const (
	thresholdA = 90.0
	thresholdB = 75.0
	thresholdC = 60.0
)

// String returns the short display label printed on the report.
func (g Grade) String() string {
	switch g {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return "N/A"
	}
}

// Average returns TotalMarks / NumSubjects as a floating-point quotient.
// A student with zero subjects has an average of 0.0.
func Average(s types.Student) float64 {
	if s.NumSubjects == 0 {
		return 0.0
	}
	return float64(s.TotalMarks) / float64(s.NumSubjects)
}

// Assign maps a student's average onto a grade band. Zero subjects is
// checked first and always yields Invalid.
func Assign(s types.Student) Grade {
	if s.NumSubjects == 0 {
		return Invalid
	}

	avg := Average(s)
	switch {
	case avg >= thresholdA:
		return A
	case avg >= thresholdB:
		return B
	case avg >= thresholdC:
		return C
	default:
		return D
	}
}
