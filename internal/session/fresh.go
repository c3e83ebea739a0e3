package session

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// FreshLines returns the indexes in after of lines that a line diff against
// before reports as inserted.
func FreshLines(before, after []string) map[int]bool {
	out := map[int]bool{}
	if len(after) == 0 {
		return out
	}
	d := dmp.New()
	a, b, table := d.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)

	idx := 0
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		switch df.Type {
		case dmp.DiffInsert:
			for i := 0; i < n; i++ {
				out[idx+i] = true
			}
			idx += n
		case dmp.DiffEqual:
			idx += n
		}
	}
	return out
}

// joinLines terminates every line so the last one diffs like the rest.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
