package maps

import (
	"go.uber.org/zap"

	"github.com/maddymakesgames/celeste-go/errors"
)

// Header is the magic string every map file starts with.
const Header = "CELESTE MAP"

// RawMap is the untyped form of a whole map file: its name, its string
// table, and the root of the element tree.
type RawMap struct {
	Name   string
	Lookup *LookupTable
	Root   *RawElement
}

// Decode reads a complete map file from data.
//
// Names in the returned tree are lookup indices exactly as stored in
// the file; call ResolveNames before editing the tree.
func Decode(data []byte) (*RawMap, error) {
	r := NewReader(data)

	header, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if header != Header {
		return nil, errors.InvalidHeader(Header, header)
	}

	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	lookup, err := r.ReadLookupTable()
	if err != nil {
		return nil, err
	}

	root, err := r.ReadElement()
	if err != nil {
		return nil, err
	}

	return &RawMap{Name: name, Lookup: lookup, Root: root}, nil
}

// Encode serializes the map back to bytes. Every name in the tree must
// already be a lookup index; call UnresolveNames first on an edited
// tree.
func (m *RawMap) Encode() ([]byte, error) {
	w := NewWriter()

	w.WriteString(Header)
	w.WriteString(m.Name)
	w.WriteLookupTable(m.Lookup)
	if err := w.WriteElement(m.Root); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// ResolveNames replaces every lookup index in the tree with its
// string. Do this directly after decoding: edits can grow the table,
// which shifts the indices already in the tree.
func (m *RawMap) ResolveNames() {
	m.Root.resolveNames(m.Lookup)
}

// UnresolveNames interns every string in the tree into the table and
// then rewrites the tree to reference the table by index. Do this only
// right before encoding: the indices go stale on the next edit.
func (m *RawMap) UnresolveNames() {
	m.Root.internNames(m.Lookup)
	m.Root.unresolveNames(m.Lookup)
}

// Manager owns one decoded map and the registry used for dynamic
// element parsing. It keeps the raw tree in resolved (string-name)
// form between operations.
type Manager struct {
	logger *zap.Logger
	m      *RawMap
	reg    *Registry
}

// NewManager decodes data and resolves the tree for editing. A nil
// registry leaves every dynamic element raw.
func NewManager(data []byte, reg *Registry) (*Manager, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m.ResolveNames()

	if reg == nil {
		reg = NewRegistry()
	}

	return &Manager{logger: Logger(), m: m, reg: reg}, nil
}

// RegisterParser adds a parser for T to the manager's registry.
func RegisterParser[T any, PT ElementPtr[T]](mgr *Manager) {
	Register[T, PT](mgr.reg)
}

// Map returns the raw map the manager holds. It is the decoded tree
// until EncodeRoot replaces it.
func (mgr *Manager) Map() *RawMap {
	return mgr.m
}

// Parser returns a parser scoped to the map's root element.
func (mgr *Manager) Parser() *Parser {
	return &Parser{
		logger: mgr.logger,
		lookup: mgr.m.Lookup,
		raw:    mgr.m.Root,
		reg:    mgr.reg,
	}
}

// ParseRoot decodes the map's root element as T.
func ParseRoot[T any, PT ElementPtr[T]](mgr *Manager) (*T, error) {
	el := PT(new(T))
	if err := el.FromRaw(mgr.Parser()); err != nil {
		return nil, err
	}
	return el, nil
}

// EncodeRoot replaces the manager's map with a fresh encode of root
// under the given map name. The lookup table is rebuilt from scratch
// and the tree is left unresolved, ready for Bytes.
func (mgr *Manager) EncodeRoot(name string, root Element) {
	lookup := NewLookupTable()

	enc := &Encoder{
		lookup: lookup,
		name:   lookup.IndexString(root.ElementName()),
	}
	root.ToRaw(enc)

	mgr.m = &RawMap{
		Name:   name,
		Lookup: lookup,
		Root:   enc.resolve(),
	}
	mgr.m.UnresolveNames()
}

// Bytes serializes the manager's map.
//
// After NewManager alone the tree is resolved and must be unresolved
// first; after EncodeRoot it is already in writable form.
func (mgr *Manager) Bytes() ([]byte, error) {
	return mgr.m.Encode()
}
