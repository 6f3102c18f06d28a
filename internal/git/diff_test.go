package git

import (
	"reflect"
	"testing"
)

func TestParseDiffstat(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Diffstat
	}{
		{
			name: "full summary",
			out: " internal/sidebar/sort.go | 12 ++++++------\n" +
				" 3 files changed, 45 insertions(+), 12 deletions(-)",
			want: Diffstat{Files: 3, Insertions: 45, Deletions: 12},
		},
		{
			name: "insertions only",
			out:  " 1 file changed, 5 insertions(+)",
			want: Diffstat{Files: 1, Insertions: 5},
		},
		{
			name: "deletions only",
			out:  " 2 files changed, 7 deletions(-)",
			want: Diffstat{Files: 2, Deletions: 7},
		},
		{
			name: "empty output",
			out:  "",
			want: Diffstat{},
		},
		{
			name: "trailing blank lines",
			out:  " 1 file changed, 1 insertion(+)\n\n",
			want: Diffstat{Files: 1, Insertions: 1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := parseDiffstat(testCase.out)
			if got != testCase.want {
				t.Errorf("parseDiffstat() = %+v, want %+v", got, testCase.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{
			name: "multiple paths",
			out:  "README.md\ninternal/git/diff.go\n",
			want: []string{"README.md", "internal/git/diff.go"},
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
		{
			name: "blank lines dropped",
			out:  "a.md\n\n  \nb.md",
			want: []string{"a.md", "b.md"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := splitLines(testCase.out)
			if !reflect.DeepEqual(got, testCase.want) {
				t.Errorf("splitLines() = %v, want %v", got, testCase.want)
			}
		})
	}
}
