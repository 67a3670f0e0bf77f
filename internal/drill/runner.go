package drill

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/roach88/kadai/internal/dataset"
	"github.com/roach88/kadai/internal/pricing"
	"github.com/roach88/kadai/internal/staff"
	"github.com/roach88/kadai/internal/tasks"
)

// Result collects what each exercise produced. Fields of exercises that did
// not run are nil; an exercise that ran but produced nothing has a non-nil
// pointer to an empty slice.
type Result struct {
	Total       *int      `json:"total,omitempty"`
	Experienced *[]string `json:"experienced,omitempty"`
	Priorities  *[]int    `json:"priorities,omitempty"`
}

// Runner prints exercise reports to Out.
type Runner struct {
	Out    io.Writer
	Lang   language.Tag
	Logger *slog.Logger
}

// Run executes the given exercises over ds in order, or all of them when
// none are given. Each section is a heading followed by the exercise output;
// sections are separated by one blank line.
//
// The sort exercise reorders ds.Tasks in place.
func (r *Runner) Run(ds *dataset.Dataset, exercises ...Exercise) (*Result, error) {
	if len(exercises) == 0 {
		exercises = AllExercises()
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, e := range exercises {
		if !e.valid() {
			return nil, fmt.Errorf("unknown exercise %v", e)
		}
	}

	res := &Result{}
	for i, e := range exercises {
		if i > 0 {
			if _, err := fmt.Fprintln(r.Out); err != nil {
				return nil, err
			}
		}
		if _, err := fmt.Fprintln(r.Out, Heading(r.Lang, e)); err != nil {
			return nil, err
		}

		var err error
		switch e {
		case ExerciseSum:
			logger.Debug("running exercise", "exercise", e, "prices", len(ds.Prices))
			total := pricing.Total(ds.Prices)
			res.Total = &total
			_, err = fmt.Fprintf(r.Out, "%s: %d\n", labelsFor(r.Lang).total, total)
		case ExerciseFilter:
			logger.Debug("running exercise", "exercise", e, "employees", len(ds.Employees))
			names := []string{}
			for _, emp := range staff.Experienced(ds.Employees) {
				names = append(names, emp.Name)
			}
			res.Experienced = &names
			err = staff.ReportExperienced(r.Out, ds.Employees)
		case ExerciseSort:
			logger.Debug("running exercise", "exercise", e, "tasks", len(ds.Tasks))
			err = tasks.SortAndReport(r.Out, ds.Tasks)
			priorities := tasks.Priorities(ds.Tasks)
			res.Priorities = &priorities
		}
		if err != nil {
			return nil, fmt.Errorf("exercise %s: %w", e, err)
		}
	}
	return res, nil
}
