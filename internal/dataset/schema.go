package dataset

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSrc string

// ValidationError reports the first schema violation in a dataset.
type ValidationError struct {
	File    string // source file name; not part of Error()
	Path    string // dotted CUE path, e.g. "employees.0.years_of_experience"
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Message)
	}
	return "schema violation: " + e.Message
}

// validateJSON unifies a JSON-encoded dataset with #Dataset.
func validateJSON(doc []byte, filename string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Dataset"))

	v := ctx.CompileBytes(doc, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return toValidationError(err, filename)
	}

	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return toValidationError(err, filename)
	}
	return nil
}

func toValidationError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{File: filename, Message: err.Error()}
	}

	first := errs[0]
	format, args := first.Msg()
	return &ValidationError{
		File:    filename,
		Path:    strings.Join(first.Path(), "."),
		Message: fmt.Sprintf(format, args...),
	}
}
