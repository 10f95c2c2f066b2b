package models

import "fmt"

// Entry is a single string-valued output within a group
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Group is a named collection of entries, typically one deployed stack
type Group struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// SkippedItem records a group or entry that was left out of the script
// because its JSON value had the wrong type.
type SkippedItem struct {
	Group string `json:"group"`
	Key   string `json:"key,omitempty"`
	Entry bool   `json:"entry"`
	Found string `json:"found"`
}

// OutputDocument is the parsed outputs file. Groups and their entries keep
// the order in which they first appear in the source document.
type OutputDocument struct {
	Groups  []Group       `json:"groups"`
	Skipped []SkippedItem `json:"skipped,omitempty"`
}

// EntryCount returns the number of entries across all groups
func (d *OutputDocument) EntryCount() int {
	count := 0
	for _, group := range d.Groups {
		count += len(group.Entries)
	}
	return count
}

// SkipGroup records a group whose value is not an object
func (d *OutputDocument) SkipGroup(group, found string) {
	d.Skipped = append(d.Skipped, SkippedItem{Group: group, Found: found})
}

// SkipEntry records an entry whose value is not a string
func (d *OutputDocument) SkipEntry(group, key, found string) {
	d.Skipped = append(d.Skipped, SkippedItem{Group: group, Key: key, Entry: true, Found: found})
}

// IsGroup reports whether the skipped item is a whole group
func (s SkippedItem) IsGroup() bool {
	return !s.Entry
}

func (s SkippedItem) String() string {
	if s.IsGroup() {
		return fmt.Sprintf("group %q (%s value)", s.Group, s.Found)
	}
	return fmt.Sprintf("entry %q in group %q (%s value)", s.Key, s.Group, s.Found)
}
