package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRun_DefaultReport(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)
	newGolden(t).Assert(t, "default", []byte(stdout))
}

func TestRun_JSONReport(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json")
	require.NoError(t, err)
	newGolden(t).Assert(t, "all_json", []byte(stdout))
}

func TestRun_SortJSONReport(t *testing.T) {
	stdout, _, err := execute(t, "sort", "--format", "json")
	require.NoError(t, err)
	newGolden(t).Assert(t, "sort_json", []byte(stdout))
}

func TestRun_SingleExercises(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"sum"}, "問題1: 配列操作 - データ集計\n合計: 1000\n"},
		{[]string{"filter"}, "問題2: オブジェクトとループ - 社員データフィルタリング\nBob\n"},
		{[]string{"sort"}, "問題3: 配列ソートとオブジェクト比較\n1\n2\n3\n"},
		{[]string{"sum", "--lang", "en"}, "Exercise 1: Array operations - data aggregation\nTotal: 1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRun_CustomDataset(t *testing.T) {
	path := filepath.Join("testdata", "datasets", "ties.yaml")

	stdout, _, err := execute(t, "--format", "json", "--data", path)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Total       int      `json:"total"`
			Experienced []string `json:"experienced"`
			Priorities  []int    `json:"priorities"`
		} `json:"data"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 6, resp.Data.Total)
	assert.Equal(t, []string{"Kenji"}, resp.Data.Experienced)
	assert.Equal(t, []int{1, 2, 2}, resp.Data.Priorities)
	assert.Equal(t, "run-0001", resp.TraceID)
}

func TestRun_JSONReportWithNothingToList(t *testing.T) {
	path := filepath.Join("testdata", "datasets", "novices.yaml")

	stdout, _, err := execute(t, "--format", "json", "--data", path)
	require.NoError(t, err)
	newGolden(t).Assert(t, "novices_json", []byte(stdout))
}

func TestRun_JSONSingleExerciseWithNothingToList(t *testing.T) {
	path := filepath.Join("testdata", "datasets", "novices.yaml")

	tests := []struct {
		exercise string
		present  string
		absent   []string
	}{
		{"filter", "experienced", []string{"total", "priorities"}},
		{"sort", "priorities", []string{"total", "experienced"}},
	}

	for _, tt := range tests {
		t.Run(tt.exercise, func(t *testing.T) {
			stdout, _, err := execute(t, tt.exercise, "--format", "json", "--data", path)
			require.NoError(t, err)

			var resp struct {
				Data map[string]json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

			require.Contains(t, resp.Data, tt.present)
			assert.JSONEq(t, "[]", string(resp.Data[tt.present]))
			for _, key := range tt.absent {
				assert.NotContains(t, resp.Data, key)
			}
		})
	}
}

func TestRun_InvalidDataset(t *testing.T) {
	path := filepath.Join("testdata", "datasets", "invalid.yaml")

	_, _, err := execute(t, "--data", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid dataset")
}

func TestRun_InvalidDatasetJSON(t *testing.T) {
	path := filepath.Join("testdata", "datasets", "invalid.yaml")

	stdout, _, err := execute(t, "--format", "json", "--data", path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidDataset, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "invalid.yaml")
}

func TestRun_MissingDataset(t *testing.T) {
	_, _, err := execute(t, "--data", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExecute(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), []string{"filter", "--lang", "en"}, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Exercise 2: Objects and loops - employee filtering\nBob\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecute_ErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), []string{"--format", "yaml"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "kadai: invalid format")
}
