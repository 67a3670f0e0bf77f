// Package tasks orders task records by priority.
//
// Ordering is always stable: tasks with equal priority keep the relative
// order they had before sorting, so repeated runs over the same input are
// byte-for-byte reproducible.
package tasks

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Task is a unit of work with an integer priority. Lower values sort first.
// Title is optional and never affects ordering.
type Task struct {
	Priority int    `json:"priority" yaml:"priority"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Compare orders a and b by priority.
// Returns a negative number if a < b, zero if equal, positive if a > b.
func Compare(a, b Task) int {
	return cmp.Compare(a.Priority, b.Priority)
}

// Sort reorders ts in place into ascending priority order.
func Sort(ts []Task) {
	slices.SortStableFunc(ts, Compare)
}

// IsSorted reports whether ts is in non-decreasing priority order.
func IsSorted(ts []Task) bool {
	return slices.IsSortedFunc(ts, Compare)
}

// Priorities returns the priorities of ts in slice order.
func Priorities(ts []Task) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.Priority
	}
	return out
}

// SortAndReport sorts ts in place and writes each priority to w, one per line.
func SortAndReport(w io.Writer, ts []Task) error {
	Sort(ts)
	for _, t := range ts {
		if _, err := fmt.Fprintln(w, t.Priority); err != nil {
			return fmt.Errorf("report task priority %d: %w", t.Priority, err)
		}
	}
	return nil
}
