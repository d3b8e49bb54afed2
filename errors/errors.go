package errors

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead  Phase = "read"  // binary decode of the file
	PhaseParse Phase = "parse" // typed decode of an element tree
	PhaseWrite Phase = "write" // binary encode of the file
	PhaseMods  Phase = "mods"  // mod metadata handling
)

// Kind categorizes the error
type Kind string

const (
	KindEndOfBuffer       Kind = "end_of_buffer"
	KindInvalidBool       Kind = "invalid_bool"
	KindInvalidVarint     Kind = "invalid_varint"
	KindInvalidValueTag   Kind = "invalid_value_tag"
	KindInvalidHeader     Kind = "invalid_header"
	KindAttributeMissing  Kind = "attribute_missing"
	KindNoMatchingElement Kind = "no_matching_element"
	KindNameMismatch      Kind = "name_mismatch"
	KindValueMismatch     Kind = "value_mismatch"
	KindUnresolvedName    Kind = "unresolved_name"
	KindIndexOutOfRange   Kind = "index_out_of_range"
	KindInvalidData       Kind = "invalid_data"
	KindCustom            Kind = "custom"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string
	Found    string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Expected != "" || e.Found != "" {
		b.WriteString(": ")
		if e.Expected != "" && e.Found != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", found ")
			b.WriteString(e.Found)
		} else if e.Expected != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		} else {
			b.WriteString("found ")
			b.WriteString(e.Found)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Found != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Expected sets the expected kind/name
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Found sets the kind/name actually present
func (b *Builder) Found(s string) *Builder {
	b.err.Found = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// EndOfBuffer reports a read past the end of the input buffer
func EndOfBuffer(offset int) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindEndOfBuffer,
		Detail: fmt.Sprintf("reached end of buffer while reading at offset %d", offset),
		Value:  offset,
	}
}

// InvalidBool reports a bool byte that is neither 0 nor 1
func InvalidBool(b byte) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindInvalidBool,
		Detail: fmt.Sprintf("improper bool pattern found: %d", b),
		Value:  b,
	}
}

// InvalidVarint reports a variable-length integer that overflows 32 bits
func InvalidVarint(partial uint32, last byte) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindInvalidVarint,
		Detail: fmt.Sprintf("invalid variable-length integer: partial value %d, last byte %#02x", partial, last),
		Value:  partial,
	}
}

// InvalidValueTag reports an unrecognized encoded value tag byte
func InvalidValueTag(tag byte) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindInvalidValueTag,
		Detail: fmt.Sprintf("invalid encoded value tag found: %d", tag),
		Value:  tag,
	}
}

// InvalidHeader reports a file that does not start with the expected magic string
func InvalidHeader(expected, found string) *Error {
	return &Error{
		Phase:    PhaseRead,
		Kind:     KindInvalidHeader,
		Expected: fmt.Sprintf("%q", expected),
		Found:    fmt.Sprintf("%q", found),
	}
}

// AttributeMissing reports a required attribute that is not present
func AttributeMissing(name string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindAttributeMissing,
		Detail: fmt.Sprintf("missing attribute %q", name),
	}
}

// NoMatchingElement reports that no child with the requested element name exists
func NoMatchingElement(expected, parent string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindNoMatchingElement,
		Detail: fmt.Sprintf("no element of type %q was found in the children of a %q element", expected, parent),
	}
}

// NameMismatch reports an element whose name differs from the requested type
func NameMismatch(expected, found string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindNameMismatch,
		Expected: expected,
		Found:    found,
	}
}

// ValueMismatch reports a conversion requested against the wrong value kind
func ValueMismatch(expected, found string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindValueMismatch,
		Expected: expected,
		Found:    found,
	}
}

// UnresolvedName reports an inline name encountered where only an index may be written
func UnresolvedName(name string) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindUnresolvedName,
		Detail: fmt.Sprintf("tried to write map data with lookup strings still resolved, resolved string: %q", name),
		Value:  name,
	}
}

// IndexOutOfRange reports a lookup index past the end of the table
func IndexOutOfRange(index, length int) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindIndexOutOfRange,
		Detail: fmt.Sprintf("lookup index %d out of range (table holds %d strings)", index, length),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Custom wraps an arbitrary error from user element code
func Custom(cause error) *Error {
	return &Error{
		Phase: PhaseParse,
		Kind:  KindCustom,
		Cause: cause,
	}
}

// ElementFailure is one failed typed decode inside a dynamic element pass
type ElementFailure struct {
	Element string
	Err     error
}

// MultiError aggregates typed-decode failures from a dynamic element pass.
// Every sibling is attempted before the aggregate is returned, so the
// failures listed here are complete for the pass.
type MultiError struct {
	Failures []ElementFailure
	combined error
}

// NewMultiError creates an aggregate from per-element failures.
// Returns nil if there are none.
func NewMultiError(failures []ElementFailure) *MultiError {
	if len(failures) == 0 {
		return nil
	}
	var combined error
	for _, f := range failures {
		combined = multierr.Append(combined, f.Err)
	}
	return &MultiError{Failures: failures, combined: combined}
}

func (e *MultiError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("found %d error(s) parsing dynamic map elements:\n", len(e.Failures)))

	for _, f := range e.Failures {
		b.WriteByte('\t')
		b.WriteString(f.Element)
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Unwrap exposes the combined failures for errors.Is/As traversal
func (e *MultiError) Unwrap() error {
	return e.combined
}

// Is reports whether target matches this error type
func (e *MultiError) Is(target error) bool {
	_, ok := target.(*MultiError)
	return ok
}
