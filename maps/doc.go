// Package maps implements reading and writing of Celeste's binary map
// format.
//
// A map file is a length-prefixed, tree-structured container of typed
// attributes:
//
//	"CELESTE MAP" header
//	map name (plain string)
//	lookup table (u16 count, then that many plain strings)
//	root element (name index, u8 attr count, attrs, u16 child count, children)
//
// Every element and attribute name is stored once in the lookup table
// and referenced elsewhere by a 16-bit index. Decode produces a generic
// RawElement tree; typed element structs are layered on top through a
// Parser/Encoder pair and a name-keyed Registry, so element types the
// program does not model still round-trip losslessly as raw elements.
//
// Typical use:
//
//	mgr, err := maps.NewManager(data, elements.DefaultRegistry())
//	root, err := maps.ParseRoot[elements.MapRoot](mgr)
//	// edit root...
//	mgr.EncodeRoot("lvl1", root)
//	out, err := mgr.Bytes()
//
// The codec is a pure, synchronous transform over an in-memory buffer:
// no I/O, no goroutines, no shared state between passes.
package maps
