// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-14 10:26:51)
package jdom

import (
	"strings"
	"unsafe"
)

// Borrowed is the zero-copy representation. String payloads and object
// keys are views into the buffer the tree was decoded from: no new string
// storage is allocated even when escape sequences were present, because
// the tape resolves escapes in place inside that same buffer.
//
// A Borrowed tree is valid only as long as the originating buffer outlives
// it and is not modified. The view strings pin the buffer for the garbage
// collector, so the hazard is caller mutation, not collection.
type Borrowed struct {
	t ValueType
	b bool
	i int64
	f float64
	s string
	a []*Borrowed
	o map[string]*Borrowed
}

// stringToBytes converts a string to a byte slice without allocation.
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesToString converts a byte slice to a string without allocation.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

//------------------------------------------------------------------------------
// INTROSPECTION AND ACCESSORS
//------------------------------------------------------------------------------

// ValueType returns the discriminant of the value.
func (v *Borrowed) ValueType() ValueType { return v.t }

// IsNull reports whether the value is null.
func (v *Borrowed) IsNull() bool { return v.t == TypeNull }

// AsBool returns the boolean payload, if the value is a bool.
func (v *Borrowed) AsBool() (bool, bool) {
	if v.t != TypeBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the integer payload, if the value is an integer.
func (v *Borrowed) AsInt64() (int64, bool) {
	if v.t != TypeInt {
		return 0, false
	}
	return v.i, true
}

// AsUint64 returns the integer payload as unsigned; negative payloads
// return false.
func (v *Borrowed) AsUint64() (uint64, bool) {
	if v.t != TypeInt || v.i < 0 {
		return 0, false
	}
	return uint64(v.i), true
}

// AsFloat64 returns the float payload, refusing integers.
func (v *Borrowed) AsFloat64() (float64, bool) {
	if v.t != TypeFloat {
		return 0, false
	}
	return v.f, true
}

// CastFloat64 returns the value as a float, coercing integers.
func (v *Borrowed) CastFloat64() (float64, bool) {
	switch v.t {
	case TypeFloat:
		return v.f, true
	case TypeInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string payload. The result is a view into the
// decoded buffer.
func (v *Borrowed) AsString() (string, bool) {
	if v.t != TypeString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the element slice, if the value is an array.
func (v *Borrowed) AsArray() ([]*Borrowed, bool) {
	if v.t != TypeArray {
		return nil, false
	}
	return v.a, true
}

// AsObject returns the key mapping, if the value is an object.
func (v *Borrowed) AsObject() (map[string]*Borrowed, bool) {
	if v.t != TypeObject {
		return nil, false
	}
	return v.o, true
}

//------------------------------------------------------------------------------
// STRUCTURAL ACCESS
//------------------------------------------------------------------------------

// Get looks a key up in an object.
func (v *Borrowed) Get(key string) (*Borrowed, bool) {
	if v.t != TypeObject {
		return nil, false
	}
	e, ok := v.o[key]
	return e, ok
}

// GetIndex looks an index up in an array.
func (v *Borrowed) GetIndex(i int) (*Borrowed, bool) {
	if v.t != TypeArray || i < 0 || i >= len(v.a) {
		return nil, false
	}
	return v.a[i], true
}

// Insert sets key to val, last write wins. Returns ErrNotAnObject on
// non-objects.
func (v *Borrowed) Insert(key string, val *Borrowed) error {
	if v.t != TypeObject {
		return ErrNotAnObject
	}
	if v.o == nil {
		v.o = map[string]*Borrowed{}
	}
	v.o[key] = val
	return nil
}

// Remove deletes key, returning the removed value or nil if the key was
// absent. Returns ErrNotAnObject on non-objects.
func (v *Borrowed) Remove(key string) (*Borrowed, error) {
	if v.t != TypeObject {
		return nil, ErrNotAnObject
	}
	e, ok := v.o[key]
	if !ok {
		return nil, nil
	}
	delete(v.o, key)
	return e, nil
}

// Push appends val. Returns ErrNotAnArray on non-arrays.
func (v *Borrowed) Push(val *Borrowed) error {
	if v.t != TypeArray {
		return ErrNotAnArray
	}
	v.a = append(v.a, val)
	return nil
}

// Pop removes and returns the last element, or nil when the array is
// empty. Returns ErrNotAnArray on non-arrays.
func (v *Borrowed) Pop() (*Borrowed, error) {
	if v.t != TypeArray {
		return nil, ErrNotAnArray
	}
	if len(v.a) == 0 {
		return nil, nil
	}
	e := v.a[len(v.a)-1]
	v.a = v.a[:len(v.a)-1]
	return e, nil
}

// Equals compares the value against a Go primitive through the matching
// accessor family.
func (v *Borrowed) Equals(x any) bool { return equalsPrimitive[*Borrowed](v, x) }

// Interface converts the subtree into plain Go data. Strings are copied
// here, so the result is safe to keep after the source buffer changes.
func (v *Borrowed) Interface() any {
	switch v.t {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return strings.Clone(v.s)
	case TypeArray:
		out := make([]any, len(v.a))
		for i, e := range v.a {
			out[i] = e.Interface()
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.o))
		for k, e := range v.o {
			out[strings.Clone(k)] = e.Interface()
		}
		return out
	}
	return nil
}

// ToOwned deep-copies the tree into the Owned representation, detaching it
// from the source buffer.
func (v *Borrowed) ToOwned() *Owned {
	switch v.t {
	case TypeBool:
		return NewBool(v.b)
	case TypeInt:
		return NewInt(v.i)
	case TypeFloat:
		return NewFloat(v.f)
	case TypeString:
		return NewString(strings.Clone(v.s))
	case TypeArray:
		elems := make([]*Owned, len(v.a))
		for i, e := range v.a {
			elems[i] = e.ToOwned()
		}
		return &Owned{t: TypeArray, a: elems}
	case TypeObject:
		fields := make(map[string]*Owned, len(v.o))
		for k, e := range v.o {
			fields[strings.Clone(k)] = e.ToOwned()
		}
		return &Owned{t: TypeObject, o: fields}
	}
	return NewNull()
}

//------------------------------------------------------------------------------
// DECODE BUILDER
//------------------------------------------------------------------------------

// BorrowedBuilder constructs Borrowed nodes for the decode engine. String
// and key bytes stay views into the input buffer.
type BorrowedBuilder struct{}

func (BorrowedBuilder) Null() *Borrowed       { return &Borrowed{t: TypeNull} }
func (BorrowedBuilder) Bool(b bool) *Borrowed { return &Borrowed{t: TypeBool, b: b} }
func (BorrowedBuilder) EmptyArray() *Borrowed { return &Borrowed{t: TypeArray} }
func (BorrowedBuilder) Key(raw []byte) string { return bytesToString(raw) }

func (BorrowedBuilder) Number(n Number) *Borrowed {
	if n.Float {
		return &Borrowed{t: TypeFloat, f: n.F}
	}
	return &Borrowed{t: TypeInt, i: n.I}
}

func (BorrowedBuilder) String(raw []byte) *Borrowed {
	return &Borrowed{t: TypeString, s: bytesToString(raw)}
}

func (BorrowedBuilder) Array(elems []*Borrowed) *Borrowed {
	return &Borrowed{t: TypeArray, a: elems}
}

func (BorrowedBuilder) EmptyObject() *Borrowed {
	return &Borrowed{t: TypeObject, o: map[string]*Borrowed{}}
}

func (BorrowedBuilder) Object(fields map[string]*Borrowed) *Borrowed {
	return &Borrowed{t: TypeObject, o: fields}
}
