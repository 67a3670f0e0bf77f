package drill

import (
	"fmt"

	"golang.org/x/text/language"
)

// supported lists report languages; index 0 is the default.
var supported = []language.Tag{language.Japanese, language.English}

var matcher = language.NewMatcher(supported)

type labels struct {
	prefix   string
	headings map[Exercise]string
	total    string
}

// catalog is indexed like supported.
var catalog = []labels{
	{
		headings: map[Exercise]string{
			ExerciseSum:    "配列操作 - データ集計",
			ExerciseFilter: "オブジェクトとループ - 社員データフィルタリング",
			ExerciseSort:   "配列ソートとオブジェクト比較",
		},
		prefix: "問題",
		total:  "合計",
	},
	{
		headings: map[Exercise]string{
			ExerciseSum:    "Array operations - data aggregation",
			ExerciseFilter: "Objects and loops - employee filtering",
			ExerciseSort:   "Array sorting and object comparison",
		},
		prefix: "Exercise ",
		total:  "Total",
	},
}

// DefaultLanguage is the language reports use when none is requested.
var DefaultLanguage = supported[0]

// MatchLanguage parses a BCP 47 tag and picks the closest supported report
// language. Tags with no reasonable match are rejected.
func MatchLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported language %q: must match one of %v", s, supported)
	}
	return supported[idx], nil
}

func labelsFor(tag language.Tag) labels {
	for i, t := range supported {
		if t == tag {
			return catalog[i]
		}
	}
	return catalog[0]
}

// Heading returns the section heading for e, e.g. "問題1: 配列操作 - データ集計".
func Heading(tag language.Tag, e Exercise) string {
	l := labelsFor(tag)
	return fmt.Sprintf("%s%d: %s", l.prefix, e.Number(), l.headings[e])
}
