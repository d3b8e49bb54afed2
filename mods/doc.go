// Package mods handles the YAML metadata that ships alongside modded
// map binaries: the everest.yaml mod manifest and the per-map
// meta.yaml overrides.
package mods
