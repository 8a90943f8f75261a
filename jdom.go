// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-14 09:12:48)
//
// The package offers two concrete value representations behind one
// capability interface: Owned values copy every string out of the input and
// live independently of it, while Borrowed values keep zero-copy string
// views into the caller's buffer. A single generic decode engine builds
// either representation from a pre-scanned token tape, and a visitor-style
// encode engine builds Owned values from anything that can describe its own
// shape.
package jdom

import (
	"errors"
	"fmt"
)

// Error definitions shared by the decode and encode engines.
var (
	// ErrUnexpectedCharacter reports a byte at a value position that starts
	// no known JSON token.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrUnexpectedEnd reports input that stops in the middle of a value.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrStringUnterminated reports a string token without a closing quote.
	ErrStringUnterminated = errors.New("unterminated string")

	// ErrInvalidEscape reports a malformed escape sequence inside a string.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrInvalidNumber reports a number token violating the JSON grammar.
	ErrInvalidNumber = errors.New("invalid number literal")

	// ErrInvalidUTF8 reports a \uXXXX sequence that cannot form a rune.
	ErrInvalidUTF8 = errors.New("invalid unicode escape")

	// ErrTrailingCharacters reports non-whitespace bytes after the root
	// value.
	ErrTrailingCharacters = errors.New("trailing characters after value")

	// ErrDepthExceeded reports nesting beyond the configured MaxDepth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrEmptyInput reports a document with no value at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrKeyMustBeAString reports an object key whose shape has no lossless
	// string form.
	ErrKeyMustBeAString = errors.New("object key must be a string")

	// ErrNotAnObject reports an object mutator applied to a non-object.
	ErrNotAnObject = errors.New("value is not an object")

	// ErrNotAnArray reports an array mutator applied to a non-array.
	ErrNotAnArray = errors.New("value is not an array")

	// ErrUnsupportedType reports a Go value the encode bridge cannot map.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ValueType represents the type of a JSON value.
type ValueType uint8

const (
	TypeNull ValueType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "unknown"
}

// Number is the tagged numeric the tokenizer hands to the decode engine:
// either an exact 64-bit signed integer or a 64-bit float. The engines only
// wrap it, they never parse digits themselves.
type Number struct {
	Float bool
	I     int64
	F     float64
}

// IntNumber wraps an integer into a Number.
func IntNumber(i int64) Number { return Number{I: i} }

// FloatNumber wraps a float into a Number.
func FloatNumber(f float64) Number { return Number{Float: true, F: f} }

// ParseError is a categorised decode failure carrying the byte offset at
// which the cursor stopped.
type ParseError struct {
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap exposes the category so errors.Is matches the sentinel values.
func (e *ParseError) Unwrap() error { return e.Err }
