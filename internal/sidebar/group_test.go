package sidebar

import "testing"

func TestGroupFiles(t *testing.T) {
	grouped := groupFiles([]string{
		"intro.md",
		"guide/01. setup.md",
		"guide/usage.md",
		"api-reference/errors.md",
	})

	if len(grouped) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(grouped))
	}

	if got := len(grouped[ungroupedKey]); got != 1 {
		t.Errorf("ungrouped bucket has %d files, want 1", got)
	}
	if got := len(grouped["guide"]); got != 2 {
		t.Errorf("guide group has %d files, want 2", got)
	}
	if got := len(grouped["api-reference"]); got != 1 {
		t.Errorf("api-reference group has %d files, want 1", got)
	}
}

func TestGroupFiles_LinkDerivation(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		want string
	}{
		{
			name: "prefix preserved in link",
			rel:  "guide/01. setup.md",
			want: "/guide/01. setup",
		},
		{
			name: "root-level file",
			rel:  "intro.md",
			want: "/intro",
		},
		{
			name: "nested path keeps segments",
			rel:  "guide/advanced/tuning.md",
			want: "/guide/advanced/tuning",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			grouped := groupFiles([]string{testCase.rel})
			for _, files := range grouped {
				if files[0].Item.Link != testCase.want {
					t.Errorf("link = %q, want %q", files[0].Item.Link, testCase.want)
				}
			}
		})
	}
}

func TestGroupFiles_NestedFilesKeyedByFirstSegment(t *testing.T) {
	grouped := groupFiles([]string{"guide/advanced/tuning.md"})

	files, ok := grouped["guide"]
	if !ok {
		t.Fatal("expected group key 'guide' for nested file")
	}
	if files[0].Name != "tuning.md" {
		t.Errorf("file name = %q, want %q", files[0].Name, "tuning.md")
	}
	if files[0].Item.Text != "tuning" {
		t.Errorf("file title = %q, want %q", files[0].Item.Text, "tuning")
	}
}
