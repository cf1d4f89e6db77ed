// Package romlib edits the jump-table index used by the romlib build
// variant. The index assigns each library function a fixed slot in the
// in-ROM jump table; functions marked "patch" are diverted to a patched
// implementation at link time. Rebuilding the firmware with the patched
// table is left to the build system.
package romlib

import (
	"fmt"
	"strings"
)

// Entry is one jump-table slot.
type Entry struct {
	Library  string
	Function string
	Patch    bool
}

type indexLine struct {
	// raw holds comment and blank lines verbatim; entry is -1 for those.
	raw   string
	entry int
}

// Index is a parsed jump-table index file. Entry order defines the table
// slot numbers and is never changed.
type Index struct {
	entries []Entry
	lines   []indexLine
}

// Parse reads a jump-table index. Each entry line is
// `<library> <function> [patch]`; comments and blank lines are preserved.
func Parse(data string) (*Index, error) {
	index := &Index{}

	for n, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			index.lines = append(index.lines, indexLine{raw: line, entry: -1})
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: malformed jump table entry '%s'", n+1, trimmed)
		}
		entry := Entry{Library: fields[0], Function: fields[1]}
		if len(fields) == 3 {
			if fields[2] != "patch" {
				return nil, fmt.Errorf("line %d: unknown entry attribute '%s'", n+1, fields[2])
			}
			entry.Patch = true
		}

		index.lines = append(index.lines, indexLine{entry: len(index.entries)})
		index.entries = append(index.entries, entry)
	}

	return index, nil
}

// Entries returns the table entries in slot order.
func (x *Index) Entries() []Entry {
	result := make([]Entry, len(x.entries))
	copy(result, x.entries)
	return result
}

// PatchFunctions marks the named functions as patched. Functions absent from
// the table are an error: patching a function the table does not route would
// silently change nothing.
func (x *Index) PatchFunctions(functions []string) error {
	for _, function := range functions {
		found := false
		for i := range x.entries {
			if x.entries[i].Function == function {
				x.entries[i].Patch = true
				found = true
			}
		}
		if !found {
			return fmt.Errorf("function '%s' is not in the jump table", function)
		}
	}
	return nil
}

// String serializes the index back to its file form. Comments and blank
// lines are emitted verbatim; entry lines are normalized to tab separation.
func (x *Index) String() string {
	result := make([]string, 0, len(x.lines))
	for _, line := range x.lines {
		if line.entry < 0 {
			result = append(result, line.raw)
			continue
		}
		entry := x.entries[line.entry]
		text := entry.Library + "\t" + entry.Function
		if entry.Patch {
			text += "\tpatch"
		}
		result = append(result, text)
	}
	return strings.Join(result, "\n")
}
