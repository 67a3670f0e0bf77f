package drill

import (
	"fmt"
	"strings"
)

// Exercise identifies one of the three exercises.
type Exercise int

const (
	ExerciseSum Exercise = iota + 1
	ExerciseFilter
	ExerciseSort
)

// AllExercises returns every exercise in driver order.
func AllExercises() []Exercise {
	return []Exercise{ExerciseSum, ExerciseFilter, ExerciseSort}
}

// String returns the exercise's command name.
func (e Exercise) String() string {
	switch e {
	case ExerciseSum:
		return "sum"
	case ExerciseFilter:
		return "filter"
	case ExerciseSort:
		return "sort"
	default:
		return fmt.Sprintf("Exercise(%d)", int(e))
	}
}

func (e Exercise) valid() bool {
	return e >= ExerciseSum && e <= ExerciseSort
}

// Number is the 1-based position used in section headings.
func (e Exercise) Number() int {
	return int(e)
}

// ParseExercise maps a command name back to its Exercise.
func ParseExercise(name string) (Exercise, error) {
	for _, e := range AllExercises() {
		if strings.EqualFold(name, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown exercise %q", name)
}
