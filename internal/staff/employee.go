// Package staff filters employee records by experience.
package staff

import (
	"fmt"
	"io"
)

// ExperienceThreshold is the number of years an employee must exceed to be
// reported as experienced.
const ExperienceThreshold = 2

// Employee is an immutable employee record.
type Employee struct {
	Name              string `json:"name" yaml:"name"`
	YearsOfExperience int    `json:"years_of_experience" yaml:"years_of_experience"`
}

// IsExperienced reports whether e has strictly more than ExperienceThreshold years.
func (e Employee) IsExperienced() bool {
	return e.YearsOfExperience > ExperienceThreshold
}

// Experienced returns the experienced employees in their original order.
// The input slice is not modified.
func Experienced(employees []Employee) []Employee {
	var out []Employee
	for _, e := range employees {
		if e.IsExperienced() {
			out = append(out, e)
		}
	}
	return out
}

// ReportExperienced writes the name of every experienced employee to w,
// one per line, in original order.
func ReportExperienced(w io.Writer, employees []Employee) error {
	for _, e := range employees {
		if !e.IsExperienced() {
			continue
		}
		if _, err := fmt.Fprintln(w, e.Name); err != nil {
			return fmt.Errorf("report employee %q: %w", e.Name, err)
		}
	}
	return nil
}
