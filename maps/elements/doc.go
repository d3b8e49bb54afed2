// Package elements models the element types found in the vanilla
// game's map files: the Map root with its filler, level, and style
// sections, the per-level tile and decal layers, and entity and
// trigger containers.
//
// Every type here implements maps.Element. DefaultRegistry returns a
// registry with all of them pre-registered for dynamic parsing;
// elements not modeled here still round-trip as raw nodes.
package elements
