package sidebar

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// assemble turns the grouped files into the final ordered structure.
// Groups always sort with "General" pinned first and the rest by collated
// display text. Items sort by numeric prefix only when enabled; otherwise
// they keep scan order, which is an accepted nondeterminism.
func assemble(grouped map[string][]docFile, sortByPrefix bool) []Group {
	collator := collate.New(language.Und)

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == ungroupedKey || keys[j] == ungroupedKey {
			return keys[i] == ungroupedKey
		}
		return collator.CompareString(GroupTitle(keys[i]), GroupTitle(keys[j])) < 0
	})

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		files := grouped[key]
		if sortByPrefix {
			sortFiles(files, collator)
		}

		items := make([]Item, 0, len(files))
		for _, file := range files {
			items = append(items, file.Item)
		}
		groups = append(groups, Group{
			Text:  GroupTitle(key),
			Items: items,
		})
	}
	return groups
}

// sortFiles orders items within a group: prefixed files ascending by
// prefix value, then unprefixed files; ties broken by collated display
// text. The prefix is read from the original filename, not the stripped
// title.
func sortFiles(files []docFile, collator *collate.Collator) {
	sort.SliceStable(files, func(i, j int) bool {
		pi, iok := sortPrefix(files[i].Name)
		pj, jok := sortPrefix(files[j].Name)

		if iok != jok {
			return iok
		}
		if iok && pi != pj {
			return pi < pj
		}
		return collator.CompareString(files[i].Item.Text, files[j].Item.Text) < 0
	})
}

// sortPrefix extracts the numeric ordering prefix from a filename.
// Returns false when the filename has no prefix or the digits overflow.
func sortPrefix(name string) (int, bool) {
	match := numericPrefixRe.FindStringSubmatch(name)
	if match == nil {
		return 0, false
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return value, true
}
