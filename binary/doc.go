// Package binary implements the primitive wire encoding used by Celeste's
// binary file formats.
//
// All fixed-width values are little-endian. On top of those the package
// provides the two string encodings the map format uses:
//
//   - plain strings: a 7-bit variable-length integer character count
//     followed by that many single-byte characters
//   - run-length encoded strings: a u16 payload byte length followed by
//     (count, char) pairs
//
// Reader walks an in-memory buffer with a cursor and fails with
// structured read errors (end of buffer, invalid bool pattern, invalid
// varint). Writer appends to an in-memory buffer and cannot fail.
package binary
