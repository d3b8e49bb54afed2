package maps

import "sort"

// ParseFunc decodes one element from the parser's current node.
type ParseFunc func(p *Parser) (Element, error)

// Registry maps element names to their parsers. It only matters to
// ParseAny: typed parses through ParseElement and friends work whether
// or not the type is registered.
//
// A Registry is built up front and read concurrently after that; it
// must not be mutated once parsing starts.
type Registry struct {
	parsers map[string]ParseFunc
}

func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]ParseFunc)}
}

// Register adds a parser for T under T's element name, replacing any
// previous parser for that name.
func Register[T any, PT ElementPtr[T]](r *Registry) {
	name := PT(new(T)).ElementName()
	r.parsers[name] = func(p *Parser) (Element, error) {
		el := PT(new(T))
		if err := el.FromRaw(p); err != nil {
			return nil, err
		}
		return el, nil
	}
}

// Get returns the parser registered for name.
func (r *Registry) Get(name string) (ParseFunc, bool) {
	fn, ok := r.parsers[name]
	return fn, ok
}

// Has reports whether a parser is registered for name.
func (r *Registry) Has(name string) bool {
	_, ok := r.parsers[name]
	return ok
}

// Names returns the registered element names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
