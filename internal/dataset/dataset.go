package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/kadai/internal/staff"
	"github.com/roach88/kadai/internal/tasks"
)

//go:embed sample.yaml
var sampleYAML []byte

// Dataset holds the input sequences for one run.
type Dataset struct {
	Prices    []int            `json:"prices" yaml:"prices"`
	Employees []staff.Employee `json:"employees" yaml:"employees"`
	Tasks     []tasks.Task     `json:"tasks" yaml:"tasks"`
}

// Sample returns a fresh copy of the built-in sample dataset.
//
// Panics if the embedded sample fails to parse, which only happens if the
// binary was built from a broken tree.
func Sample() *Dataset {
	ds, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded sample is invalid: %v", err))
	}
	return ds
}

// Load reads and parses the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes, validates and normalizes a YAML dataset.
// Unknown keys and multi-document streams are rejected. An empty document
// is an empty dataset.
func Parse(data []byte) (*Dataset, error) {
	return parse(data, "dataset.yaml")
}

func parse(data []byte, filename string) (*Dataset, error) {
	ds := &Dataset{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err := dec.Decode(ds); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("decode yaml: %w", err)
	default:
		var extra Dataset
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errors.New("decode yaml: dataset must be a single document")
		}
	}

	ds.fillEmpty()

	if err := ds.validate(filename); err != nil {
		return nil, err
	}

	for i := range ds.Employees {
		ds.Employees[i].Name = norm.NFC.String(ds.Employees[i].Name)
	}
	return ds, nil
}

// fillEmpty replaces nil lists with empty ones so the schema sees lists, not nulls.
func (ds *Dataset) fillEmpty() {
	if ds.Prices == nil {
		ds.Prices = []int{}
	}
	if ds.Employees == nil {
		ds.Employees = []staff.Employee{}
	}
	if ds.Tasks == nil {
		ds.Tasks = []tasks.Task{}
	}
}

func (ds *Dataset) validate(filename string) error {
	doc, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return validateJSON(doc, filename)
}

// Clone returns a deep copy of ds.
func (ds *Dataset) Clone() *Dataset {
	return &Dataset{
		Prices:    append([]int{}, ds.Prices...),
		Employees: append([]staff.Employee{}, ds.Employees...),
		Tasks:     append([]tasks.Task{}, ds.Tasks...),
	}
}
