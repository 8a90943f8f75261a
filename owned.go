// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-14 10:02:33)
package jdom

// Owned is the allocating representation. Every string is an independent
// copy, so an Owned tree has no ties to the input it was decoded from. The
// zero value is null.
type Owned struct {
	t ValueType
	b bool
	i int64
	f float64
	s string
	a []*Owned
	o map[string]*Owned
}

//------------------------------------------------------------------------------
// CONSTRUCTION
//------------------------------------------------------------------------------

// NewNull returns a null value.
func NewNull() *Owned { return &Owned{t: TypeNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Owned { return &Owned{t: TypeBool, b: b} }

// NewInt returns an integer value. Narrower signed widths widen exactly
// with a plain Go conversion at the call site.
func NewInt(i int64) *Owned { return &Owned{t: TypeInt, i: i} }

// NewUint returns an integer value holding u reinterpreted into the signed
// 64-bit slot. Magnitudes of 2^63 and above come back negative; this is
// documented behavior, not corrected.
func NewUint(u uint64) *Owned { return &Owned{t: TypeInt, i: int64(u)} }

// NewFloat returns a float value.
func NewFloat(f float64) *Owned { return &Owned{t: TypeFloat, f: f} }

// NewString returns a string value.
func NewString(s string) *Owned { return &Owned{t: TypeString, s: s} }

// NewArray returns an empty array.
func NewArray() *Owned { return &Owned{t: TypeArray} }

// NewObject returns an empty object.
func NewObject() *Owned { return &Owned{t: TypeObject, o: map[string]*Owned{}} }

// NewNumber wraps a tokenizer-produced Number.
func NewNumber(n Number) *Owned {
	if n.Float {
		return NewFloat(n.F)
	}
	return NewInt(n.I)
}

//------------------------------------------------------------------------------
// INTROSPECTION AND ACCESSORS
//------------------------------------------------------------------------------

// ValueType returns the discriminant of the value.
func (v *Owned) ValueType() ValueType { return v.t }

// IsNull reports whether the value is null.
func (v *Owned) IsNull() bool { return v.t == TypeNull }

// AsBool returns the boolean payload, if the value is a bool.
func (v *Owned) AsBool() (bool, bool) {
	if v.t != TypeBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the integer payload, if the value is an integer.
func (v *Owned) AsInt64() (int64, bool) {
	if v.t != TypeInt {
		return 0, false
	}
	return v.i, true
}

// AsUint64 returns the integer payload as unsigned. Negative payloads,
// including reinterpreted uint64 values of 2^63 and above, have no
// unsigned reading and return false.
func (v *Owned) AsUint64() (uint64, bool) {
	if v.t != TypeInt || v.i < 0 {
		return 0, false
	}
	return uint64(v.i), true
}

// AsFloat64 returns the float payload. Integers are refused; CastFloat64
// coerces them.
func (v *Owned) AsFloat64() (float64, bool) {
	if v.t != TypeFloat {
		return 0, false
	}
	return v.f, true
}

// CastFloat64 returns the value as a float, coercing integers. The
// coercion is lossy above 2^53.
func (v *Owned) CastFloat64() (float64, bool) {
	switch v.t {
	case TypeFloat:
		return v.f, true
	case TypeInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string payload, if the value is a string.
func (v *Owned) AsString() (string, bool) {
	if v.t != TypeString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the element slice, if the value is an array.
func (v *Owned) AsArray() ([]*Owned, bool) {
	if v.t != TypeArray {
		return nil, false
	}
	return v.a, true
}

// AsObject returns the key mapping, if the value is an object.
func (v *Owned) AsObject() (map[string]*Owned, bool) {
	if v.t != TypeObject {
		return nil, false
	}
	return v.o, true
}

//------------------------------------------------------------------------------
// STRUCTURAL ACCESS
//------------------------------------------------------------------------------

// Get looks a key up in an object.
func (v *Owned) Get(key string) (*Owned, bool) {
	if v.t != TypeObject {
		return nil, false
	}
	e, ok := v.o[key]
	return e, ok
}

// GetIndex looks an index up in an array.
func (v *Owned) GetIndex(i int) (*Owned, bool) {
	if v.t != TypeArray || i < 0 || i >= len(v.a) {
		return nil, false
	}
	return v.a[i], true
}

// Insert sets key to val, last write wins. Returns ErrNotAnObject on
// non-objects.
func (v *Owned) Insert(key string, val *Owned) error {
	if v.t != TypeObject {
		return ErrNotAnObject
	}
	if v.o == nil {
		v.o = map[string]*Owned{}
	}
	v.o[key] = val
	return nil
}

// Remove deletes key, returning the removed value or nil if the key was
// absent. Returns ErrNotAnObject on non-objects.
func (v *Owned) Remove(key string) (*Owned, error) {
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
func (v *Owned) Push(val *Owned) error {
	if v.t != TypeArray {
		return ErrNotAnArray
	}
	v.a = append(v.a, val)
	return nil
}

// Pop removes and returns the last element, or nil when the array is
// empty. Returns ErrNotAnArray on non-arrays.
func (v *Owned) Pop() (*Owned, error) {
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
func (v *Owned) Equals(x any) bool { return equalsPrimitive[*Owned](v, x) }

// Interface converts the subtree into plain Go data: nil, bool, int64,
// float64, string, []any and map[string]any.
func (v *Owned) Interface() any {
	switch v.t {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeArray:
		out := make([]any, len(v.a))
		for i, e := range v.a {
			out[i] = e.Interface()
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.o))
		for k, e := range v.o {
			out[k] = e.Interface()
		}
		return out
	}
	return nil
}

//------------------------------------------------------------------------------
// DECODE BUILDER
//------------------------------------------------------------------------------

// OwnedBuilder constructs Owned nodes for the decode engine. String and
// key bytes are copied out of the input buffer.
type OwnedBuilder struct{}

func (OwnedBuilder) Null() *Owned             { return NewNull() }
func (OwnedBuilder) Bool(b bool) *Owned       { return NewBool(b) }
func (OwnedBuilder) Number(n Number) *Owned   { return NewNumber(n) }
func (OwnedBuilder) String(raw []byte) *Owned { return NewString(string(raw)) }
func (OwnedBuilder) Key(raw []byte) string    { return string(raw) }
func (OwnedBuilder) EmptyArray() *Owned       { return NewArray() }
func (OwnedBuilder) Array(elems []*Owned) *Owned {
	return &Owned{t: TypeArray, a: elems}
}
func (OwnedBuilder) EmptyObject() *Owned { return NewObject() }
func (OwnedBuilder) Object(fields map[string]*Owned) *Owned {
	return &Owned{t: TypeObject, o: fields}
}
