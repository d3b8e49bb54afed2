// Package celeste provides encoding and decoding of Celeste's binary
// map format, along with typed access to the element tree inside it.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct
// responsibilities:
//
//	celeste-go/          Root package, documentation only
//	├── binary/          Little-endian reader/writer primitives (varints, RLE strings)
//	├── maps/            Map container codec, lookup table, element tree, parser/encoder
//	│   └── elements/    Typed definitions of the stock map elements
//	├── mods/            everest.yaml and meta.yaml mod metadata
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode a map and parse its root element:
//
//	mgr, err := maps.NewManager(data, elements.DefaultRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	root, err := maps.ParseRoot[elements.MapRoot](mgr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Edit the typed tree, then serialize it back:
//
//	mgr.EncodeRoot(mgr.Map().Name, root)
//	out, err := mgr.Bytes()
package celeste
