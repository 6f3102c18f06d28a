package sidebar

import "strings"

// docFile is one scanned markdown file, carrying enough to derive its
// display title and its site link. Name keeps the original filename so
// the sorter can read the numeric prefix back out after the title has
// been stripped.
type docFile struct {
	Name string // filename with extension, e.g. "01. intro.md"
	Item Item
}

// ungroupedKey is the sentinel for files directly in the docs root.
// It renders as the "General" group.
const ungroupedKey = ""

// groupFiles maps each relative path to its group key: the first path
// segment when the file lives in a subdirectory, the ungrouped sentinel
// otherwise. Item order within a group is imposed later.
func groupFiles(files []string) map[string][]docFile {
	grouped := make(map[string][]docFile)
	for _, rel := range files {
		key := ungroupedKey
		name := rel
		if idx := strings.IndexByte(rel, '/'); idx >= 0 {
			key = rel[:idx]
			name = rel[strings.LastIndexByte(rel, '/')+1:]
		}

		grouped[key] = append(grouped[key], docFile{
			Name: name,
			Item: Item{
				Text: FileTitle(name),
				Link: "/" + strings.TrimSuffix(rel, markdownExt),
			},
		})
	}
	return grouped
}
