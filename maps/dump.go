package maps

import (
	"fmt"
	"strings"
)

// Dump renders the map as an indented tree for debugging. Names still
// stored as indices are resolved through the table for display only.
func (m *RawMap) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", m.Name)
	fmt.Fprintf(&b, "\tlookup_table: [")
	for i, s := range m.Lookup.Strings() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", s)
	}
	b.WriteString("]\n\troot_element: ")
	m.Root.dump(&b, 2, m.Lookup)
	b.WriteString("\n}")
	return b.String()
}

// Dump renders the element subtree for debugging.
func (el *RawElement) Dump(t *LookupTable) string {
	var b strings.Builder
	el.dump(&b, 1, t)
	return b.String()
}

func (el *RawElement) dump(b *strings.Builder, depth int, t *LookupTable) {
	indent := strings.Repeat("\t", depth)

	b.WriteString(el.Name.Text(t))
	b.WriteString(" {")

	for i := range el.Attributes {
		attr := &el.Attributes[i]
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(attr.Name.Text(t))
		b.WriteString(": ")
		b.WriteString(attr.Value.Display(t))
	}

	for _, c := range el.Children {
		b.WriteByte('\n')
		b.WriteString(indent)
		c.dump(b, depth+1, t)
	}

	if len(el.Attributes) > 0 || len(el.Children) > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("\t", depth-1))
	}
	b.WriteByte('}')
}
