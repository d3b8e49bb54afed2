package maps

import (
	"slices"
	"sort"
)

// LookupIndex is an index into a LookupTable.
//
// An index is only meaningful relative to one table snapshot: any
// insertion shifts the positions after it and invalidates indices
// produced earlier.
type LookupIndex uint16

// LookupTable holds all the deduplicated strings for the names in a
// map file. The stored list is kept in reverse-lexicographic order so
// membership checks can binary search.
//
// Strings registered through AddString are staged in a pending list
// until they are seen a second time; IndexString promotes
// unconditionally. Indices are assigned in a second pass, after the
// table stops growing, via IndexOf.
type LookupTable struct {
	strings []string
	pending []string
}

func NewLookupTable() *LookupTable {
	return &LookupTable{}
}

// TableFromSlice creates a table over strings decoded from a file.
// The slice order is kept verbatim since file indices refer to it.
func TableFromSlice(strings []string) *LookupTable {
	return &LookupTable{strings: strings}
}

// search returns the position of s in the sorted list, or the position
// it would be inserted at to keep the reverse-lexicographic order.
func (t *LookupTable) search(s string) (int, bool) {
	idx := sort.Search(len(t.strings), func(i int) bool {
		return t.strings[i] <= s
	})
	return idx, idx < len(t.strings) && t.strings[idx] == s
}

// Contains reports whether s is in the stored list. Pending strings do
// not count as contained.
func (t *LookupTable) Contains(s string) bool {
	_, ok := t.search(s)
	return ok
}

// AddString registers s in the table and returns an inline name for it.
//
// A string is only committed to the stored list once it has been seen
// more than once; the first sighting sits in a pending staging list.
// Callers convert the returned name to an index later, against the
// final table, with ResolvableName.Unresolve.
func (t *LookupTable) AddString(s string) ResolvableName {
	if !t.Contains(s) {
		if i := slices.Index(t.pending, s); i >= 0 {
			idx, ok := t.search(s)
			if !ok {
				t.pending = slices.Delete(t.pending, i, i+1)
				t.strings = slices.Insert(t.strings, idx, s)
			}
		} else {
			t.pending = append(t.pending, s)
		}
	}

	return InlineName(s)
}

// IndexString puts s into the stored list unconditionally, unlike
// AddString, and returns an inline name for it.
func (t *LookupTable) IndexString(s string) ResolvableName {
	if idx, ok := t.search(s); !ok {
		if i := slices.Index(t.pending, s); i >= 0 {
			t.pending = slices.Delete(t.pending, i, i+1)
		}
		t.strings = slices.Insert(t.strings, idx, s)
	}

	return InlineName(s)
}

// IndexOf resolves s to its position in the stored list.
//
// Only meaningful once the table has stopped growing: indices returned
// earlier go stale on the next insertion.
func (t *LookupTable) IndexOf(s string) (LookupIndex, bool) {
	idx, ok := t.search(s)
	if !ok {
		return 0, false
	}
	return LookupIndex(idx), true
}

// Get resolves an index back into its string.
func (t *LookupTable) Get(index LookupIndex) (string, bool) {
	if int(index) >= len(t.strings) {
		return "", false
	}
	return t.strings[index], true
}

// Len returns the number of stored strings, not counting pending ones.
func (t *LookupTable) Len() int {
	return len(t.strings)
}

// Strings returns the stored list in table order.
func (t *LookupTable) Strings() []string {
	return t.strings
}

// ResolvableName is a name that is either an inline string or an index
// into a LookupTable. Names decode as indices, get resolved to strings
// for inspection and editing, and must be unresolved back to indices
// before the tree is written out.
type ResolvableName struct {
	inline  string
	index   LookupIndex
	isIndex bool
}

// IndexName creates a name referencing a lookup table slot.
func IndexName(index LookupIndex) ResolvableName {
	return ResolvableName{index: index, isIndex: true}
}

// InlineName creates a name carrying its string inline.
func InlineName(s string) ResolvableName {
	return ResolvableName{inline: s}
}

// IsIndex reports whether the name is an unresolved table index.
func (n ResolvableName) IsIndex() bool {
	return n.isIndex
}

// Index returns the lookup index if the name is one.
func (n ResolvableName) Index() (LookupIndex, bool) {
	return n.index, n.isIndex
}

// Inline returns the inline string if the name is one.
func (n ResolvableName) Inline() (string, bool) {
	return n.inline, !n.isIndex
}

// Text returns the name's string, looking into the table if necessary.
// An index past the end of the table yields the empty string.
func (n ResolvableName) Text(t *LookupTable) string {
	if n.isIndex {
		s, _ := t.Get(n.index)
		return s
	}
	return n.inline
}

// Resolve converts an index name into an inline name holding an owned
// copy of the table string. Inline names are left untouched.
func (n *ResolvableName) Resolve(t *LookupTable) {
	if n.isIndex {
		s, _ := t.Get(n.index)
		*n = InlineName(s)
	}
}

// Unresolve converts an inline name into an index name if an equal
// string exists in the table. Otherwise the name stays inline, which
// the writer will reject.
func (n *ResolvableName) Unresolve(t *LookupTable) {
	if !n.isIndex {
		if idx, ok := t.IndexOf(n.inline); ok {
			*n = IndexName(idx)
		}
	}
}
