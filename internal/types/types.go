// Package types defines the Student record built from one console session
// and the rules it must satisfy before a report card is printed.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Student is the single record collected during one console session.
//
// Marks and subject count are unsigned, so the "non-negative" rule is
// carried by the type itself; they are validated independently at input
// time and no cross-field rule applies (a total larger than 100 × subjects
// is accepted as entered).
type Student struct {
	Name        string `json:"name"         validate:"required"`
	TotalMarks  uint32 `json:"total_marks"`
	NumSubjects uint32 `json:"num_subjects"`
}

// NewStudent builds a Student from the three collected fields.
func NewStudent(name string, totalMarks, numSubjects uint32) Student {
	return Student{
		Name:        name,
		TotalMarks:  totalMarks,
		NumSubjects: numSubjects,
	}
}

var validate = validator.New()

// Validate checks the validate:"..." tags on s.
func (s Student) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("types.Student: %w", err)
	}
	return nil
}
