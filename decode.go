// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-15 11:19:07)
package jdom

// ParseOptions represents additional options for decode operations.
type ParseOptions struct {
	// MaxDepth bounds container nesting. Decoding fails with
	// ErrDepthExceeded beyond it.
	MaxDepth int
}

// DefaultParseOptions provides default settings for decode operations.
var DefaultParseOptions = ParseOptions{
	MaxDepth: 1024,
}

// ParseOwned decodes data into an Owned tree. The buffer may be modified:
// escape sequences are resolved in place during string extraction.
func ParseOwned(data []byte) (*Owned, error) {
	return ParseTo[*Owned](data, OwnedBuilder{}, nil)
}

// ParseOwnedWithOptions is ParseOwned with explicit options. A nil opts
// means DefaultParseOptions.
func ParseOwnedWithOptions(data []byte, opts *ParseOptions) (*Owned, error) {
	return ParseTo[*Owned](data, OwnedBuilder{}, opts)
}

// ParseOwnedString is like ParseOwned but accepts a string input. The
// string is copied first, since decoding mutates its buffer.
func ParseOwnedString(json string) (*Owned, error) {
	return ParseOwned([]byte(json))
}

// ParseBorrowed decodes data into a Borrowed tree of zero-copy views. The
// buffer is modified in place when escapes are present and must stay alive
// and untouched for as long as the tree is used.
func ParseBorrowed(data []byte) (*Borrowed, error) {
	return ParseTo[*Borrowed](data, BorrowedBuilder{}, nil)
}

// ParseBorrowedWithOptions is ParseBorrowed with explicit options.
func ParseBorrowedWithOptions(data []byte, opts *ParseOptions) (*Borrowed, error) {
	return ParseTo[*Borrowed](data, BorrowedBuilder{}, opts)
}

// ParseTo decodes data into any representation through its Builder. This
// is the generic entry point the Owned and Borrowed forms are wrappers
// around.
func ParseTo[V any](data []byte, b Builder[V], opts *ParseOptions) (V, error) {
	var zero V
	c, err := NewCursor(data)
	if err != nil {
		return zero, err
	}
	return DecodeCursor(c, b, opts)
}

// DecodeCursor runs the decode engine over an already-constructed cursor.
func DecodeCursor[V any](c Cursor, b Builder[V], opts *ParseOptions) (V, error) {
	if opts == nil {
		opts = &DefaultParseOptions
	}
	d := decoder[V]{c: c, b: b, maxDepth: opts.MaxDepth}
	v, err := d.parseRoot()
	if err != nil {
		var zero V
		return zero, err
	}
	if !c.AtEnd() {
		var zero V
		c.Skip()
		return zero, c.ErrorAt(ErrTrailingCharacters)
	}
	return v, nil
}

// Valid reports whether data is a single well-formed JSON document. It
// runs the full engine with a builder that constructs nothing.
func Valid(data []byte) bool {
	_, err := ParseTo[discard](data, discardBuilder{}, nil)
	return err == nil
}

//------------------------------------------------------------------------------
// GENERIC DECODE ENGINE
//------------------------------------------------------------------------------

// decoder builds one value tree from the token stream. It is generic over
// the representation: every construction goes through the Builder, so the
// recursive algorithm has no representation-specific branches.
type decoder[V any] struct {
	c        Cursor
	b        Builder[V]
	depth    int
	maxDepth int
}

// parseRoot handles the true entry point, where a bare number follows the
// top-level trailing-delimiter rules. Dispatch peeks at the next
// structural byte and then consumes the token.
func (d *decoder[V]) parseRoot() (V, error) {
	var zero V
	c := d.c.Peek()
	d.c.Skip()
	switch c {
	case '"':
		s, err := d.c.ParseString()
		if err != nil {
			return zero, err
		}
		return d.b.String(s), nil
	case '-':
		n, err := d.c.ParseNumberRoot(true)
		if err != nil {
			return zero, err
		}
		return d.b.Number(n), nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := d.c.ParseNumberRoot(false)
		if err != nil {
			return zero, err
		}
		return d.b.Number(n), nil
	case 'n':
		return d.b.Null(), nil
	case 't':
		return d.b.Bool(true), nil
	case 'f':
		return d.b.Bool(false), nil
	case '[':
		return d.parseArray()
	case '{':
		return d.parseObject()
	case 0:
		return zero, d.c.ErrorAt(ErrUnexpectedEnd)
	default:
		return zero, d.c.ErrorAt(ErrUnexpectedCharacter)
	}
}

// parseValue handles every nested position.
func (d *decoder[V]) parseValue() (V, error) {
	var zero V
	c := d.c.Peek()
	d.c.Skip()
	switch c {
	case '"':
		s, err := d.c.ParseString()
		if err != nil {
			return zero, err
		}
		return d.b.String(s), nil
	case '-':
		n, err := d.c.ParseNumberNested(true)
		if err != nil {
			return zero, err
		}
		return d.b.Number(n), nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := d.c.ParseNumberNested(false)
		if err != nil {
			return zero, err
		}
		return d.b.Number(n), nil
	case 'n':
		return d.b.Null(), nil
	case 't':
		return d.b.Bool(true), nil
	case 'f':
		return d.b.Bool(false), nil
	case '[':
		return d.parseArray()
	case '{':
		return d.parseObject()
	case 0:
		return zero, d.c.ErrorAt(ErrUnexpectedEnd)
	default:
		return zero, d.c.ErrorAt(ErrUnexpectedCharacter)
	}
}

func (d *decoder[V]) parseArray() (V, error) {
	var zero V
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return zero, d.c.ErrorAt(ErrDepthExceeded)
	}

	// Look ahead for the element count. Empty arrays skip the growable
	// buffer entirely; everything else is sized exactly once. The count is
	// trusted, not re-validated against the tokens consumed.
	n := d.c.CountElements()
	if n == 0 {
		d.c.Skip()
		return d.b.EmptyArray(), nil
	}

	elems := make([]V, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.parseValue()
		if err != nil {
			return zero, err
		}
		elems = append(elems, v)
		d.c.Skip()
	}
	return d.b.Array(elems), nil
}

func (d *decoder[V]) parseObject() (V, error) {
	var zero V
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return zero, d.c.ErrorAt(ErrDepthExceeded)
	}

	n := d.c.CountElements()
	if n == 0 {
		d.c.Skip()
		return d.b.EmptyObject(), nil
	}

	fields := make(map[string]V, n)
	for i := 0; i < n; i++ {
		// Consuming the string token and materializing the key are two
		// separate cursor steps.
		d.c.Skip()
		raw, err := d.c.ParseString()
		if err != nil {
			return zero, err
		}
		key := d.b.Key(raw)
		d.c.Skip()
		v, err := d.parseValue()
		if err != nil {
			return zero, err
		}
		// Duplicate-unchecked insertion: last write wins.
		fields[key] = v
		d.c.Skip()
	}
	return d.b.Object(fields), nil
}

//------------------------------------------------------------------------------
// DISCARDING BUILDER
//------------------------------------------------------------------------------

type discard struct{}

type discardBuilder struct{}

func (discardBuilder) Null() discard                     { return discard{} }
func (discardBuilder) Bool(bool) discard                 { return discard{} }
func (discardBuilder) Number(Number) discard             { return discard{} }
func (discardBuilder) String([]byte) discard             { return discard{} }
func (discardBuilder) Key(raw []byte) string             { return bytesToString(raw) }
func (discardBuilder) EmptyArray() discard               { return discard{} }
func (discardBuilder) Array([]discard) discard           { return discard{} }
func (discardBuilder) EmptyObject() discard              { return discard{} }
func (discardBuilder) Object(map[string]discard) discard { return discard{} }
