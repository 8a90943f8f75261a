// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-14 09:31:16)
package jdom

import (
	"math"
	"strconv"
)

// Value is the capability interface every representation provides. It is
// generic over the concrete node type so that one algorithm can walk Owned
// and Borrowed trees without representation-specific branches.
//
// The numeric accessors are canonical: one per family (AsInt64, AsUint64,
// AsFloat64). The narrower widths are derived from them by the checked
// free functions below.
type Value[V any] interface {
	// ValueType returns the discriminant of the tagged union.
	ValueType() ValueType

	// IsNull reports whether the value is null.
	IsNull() bool

	// AsBool returns the boolean payload, if the value is a bool.
	AsBool() (bool, bool)

	// AsInt64 returns the integer payload, if the value is an integer.
	AsInt64() (int64, bool)

	// AsUint64 returns the integer payload reinterpreted as unsigned.
	// Negative integers have no unsigned form and return false.
	AsUint64() (uint64, bool)

	// AsFloat64 returns the float payload. It refuses integer input; use
	// CastFloat64 to coerce.
	AsFloat64() (float64, bool)

	// CastFloat64 additionally coerces integers to float, lossy at large
	// magnitude.
	CastFloat64() (float64, bool)

	// AsString returns the string payload, if the value is a string.
	AsString() (string, bool)

	// AsArray returns the element slice, if the value is an array.
	AsArray() ([]V, bool)

	// AsObject returns the key mapping, if the value is an object.
	AsObject() (map[string]V, bool)

	// Get looks a key up in an object. It returns false for missing keys
	// and for non-objects alike.
	Get(key string) (V, bool)

	// GetIndex looks an index up in an array. It returns false when out of
	// bounds and for non-arrays alike.
	GetIndex(i int) (V, bool)

	// Insert sets key to val in an object, last write wins. Returns
	// ErrNotAnObject on any other variant.
	Insert(key string, val V) error

	// Remove deletes key from an object, returning the removed value (the
	// zero node if the key was absent). Returns ErrNotAnObject on any
	// other variant.
	Remove(key string) (V, error)

	// Push appends val to an array. Returns ErrNotAnArray on any other
	// variant.
	Push(val V) error

	// Pop removes and returns the last array element (the zero node and no
	// error when the array is empty). Returns ErrNotAnArray on any other
	// variant.
	Pop() (V, error)

	// Equals compares the value against a Go primitive. It agrees with the
	// corresponding accessor for every supported primitive type.
	Equals(x any) bool

	// Interface converts the subtree into plain Go data.
	Interface() any

	// MarshalJSON renders the subtree as compact JSON text.
	MarshalJSON() ([]byte, error)
}

// Builder is the bulk-construction interface the decode engine needs on top
// of Value: leaf construction from token payloads plus homogeneous
// container construction. String and Key receive the raw (already
// unescaped) token bytes; the builder decides whether to copy them.
type Builder[V any] interface {
	Null() V
	Bool(b bool) V
	Number(n Number) V
	String(raw []byte) V
	Key(raw []byte) string
	EmptyArray() V
	Array(elems []V) V
	EmptyObject() V
	Object(fields map[string]V) V
}

//------------------------------------------------------------------------------
// DERIVED NUMERIC ACCESSORS
//------------------------------------------------------------------------------

// AsInt32 derives a 32-bit accessor from the canonical AsInt64.
func AsInt32[V Value[V]](v V) (int32, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// AsInt16 derives a 16-bit accessor from the canonical AsInt64.
func AsInt16[V Value[V]](v V) (int16, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt16 || i > math.MaxInt16 {
		return 0, false
	}
	return int16(i), true
}

// AsInt8 derives an 8-bit accessor from the canonical AsInt64.
func AsInt8[V Value[V]](v V) (int8, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt8 || i > math.MaxInt8 {
		return 0, false
	}
	return int8(i), true
}

// AsUint32 derives a 32-bit accessor from the canonical AsUint64.
func AsUint32[V Value[V]](v V) (uint32, bool) {
	u, ok := v.AsUint64()
	if !ok || u > math.MaxUint32 {
		return 0, false
	}
	return uint32(u), true
}

// AsUint16 derives a 16-bit accessor from the canonical AsUint64.
func AsUint16[V Value[V]](v V) (uint16, bool) {
	u, ok := v.AsUint64()
	if !ok || u > math.MaxUint16 {
		return 0, false
	}
	return uint16(u), true
}

// AsUint8 derives an 8-bit accessor from the canonical AsUint64.
func AsUint8[V Value[V]](v V) (uint8, bool) {
	u, ok := v.AsUint64()
	if !ok || u > math.MaxUint8 {
		return 0, false
	}
	return uint8(u), true
}

// AsFloat32 derives a 32-bit accessor from the canonical AsFloat64.
func AsFloat32[V Value[V]](v V) (float32, bool) {
	f, ok := v.AsFloat64()
	if !ok || f < -math.MaxFloat32 || f > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

//------------------------------------------------------------------------------
// DERIVED INTROSPECTION
//------------------------------------------------------------------------------

// IsBool reports whether AsBool would succeed.
func IsBool[V Value[V]](v V) bool { _, ok := v.AsBool(); return ok }

// IsInt64 reports whether AsInt64 would succeed.
func IsInt64[V Value[V]](v V) bool { _, ok := v.AsInt64(); return ok }

// IsInt32 reports whether AsInt32 would succeed.
func IsInt32[V Value[V]](v V) bool { _, ok := AsInt32(v); return ok }

// IsInt16 reports whether AsInt16 would succeed.
func IsInt16[V Value[V]](v V) bool { _, ok := AsInt16(v); return ok }

// IsInt8 reports whether AsInt8 would succeed.
func IsInt8[V Value[V]](v V) bool { _, ok := AsInt8(v); return ok }

// IsUint64 reports whether AsUint64 would succeed.
func IsUint64[V Value[V]](v V) bool { _, ok := v.AsUint64(); return ok }

// IsUint32 reports whether AsUint32 would succeed.
func IsUint32[V Value[V]](v V) bool { _, ok := AsUint32(v); return ok }

// IsUint16 reports whether AsUint16 would succeed.
func IsUint16[V Value[V]](v V) bool { _, ok := AsUint16(v); return ok }

// IsUint8 reports whether AsUint8 would succeed.
func IsUint8[V Value[V]](v V) bool { _, ok := AsUint8(v); return ok }

// IsFloat64 reports whether AsFloat64 would succeed.
func IsFloat64[V Value[V]](v V) bool { _, ok := v.AsFloat64(); return ok }

// IsFloat32 reports whether AsFloat32 would succeed.
func IsFloat32[V Value[V]](v V) bool { _, ok := AsFloat32(v); return ok }

// IsFloatCastable reports whether CastFloat64 would succeed.
func IsFloatCastable[V Value[V]](v V) bool { _, ok := v.CastFloat64(); return ok }

// IsString reports whether AsString would succeed.
func IsString[V Value[V]](v V) bool { _, ok := v.AsString(); return ok }

// IsArray reports whether AsArray would succeed.
func IsArray[V Value[V]](v V) bool { _, ok := v.AsArray(); return ok }

// IsObject reports whether AsObject would succeed.
func IsObject[V Value[V]](v V) bool { _, ok := v.AsObject(); return ok }

//------------------------------------------------------------------------------
// CROSS-REPRESENTATION EQUALITY
//------------------------------------------------------------------------------

// Equal deep-compares two value trees, possibly of different
// representations, through the capability interface. Object key order is
// irrelevant; array order is significant.
func Equal[A Value[A], B Value[B]](a A, b B) bool {
	if a.ValueType() != b.ValueType() {
		return false
	}
	switch a.ValueType() {
	case TypeNull:
		return true
	case TypeBool:
		x, _ := a.AsBool()
		y, _ := b.AsBool()
		return x == y
	case TypeInt:
		x, _ := a.AsInt64()
		y, _ := b.AsInt64()
		return x == y
	case TypeFloat:
		x, _ := a.AsFloat64()
		y, _ := b.AsFloat64()
		return x == y
	case TypeString:
		x, _ := a.AsString()
		y, _ := b.AsString()
		return x == y
	case TypeArray:
		xs, _ := a.AsArray()
		ys, _ := b.AsArray()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		xm, _ := a.AsObject()
		ym, _ := b.AsObject()
		if len(xm) != len(ym) {
			return false
		}
		for k, x := range xm {
			y, ok := ym[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	}
	return false
}

//------------------------------------------------------------------------------
// PATH LOOKUP
//------------------------------------------------------------------------------

// Lookup walks a dot-separated path through a value tree. Numeric segments
// index arrays, everything else keys objects. It works on any
// representation.
func Lookup[V Value[V]](v V, path string) (V, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for len(path) > 0 {
		seg := path
		if i := indexByte(path, '.'); i >= 0 {
			seg, path = path[:i], path[i+1:]
		} else {
			path = ""
		}
		if _, ok := cur.AsArray(); ok {
			idx, err := strconv.Atoi(seg)
			if err != nil {
				var zero V
				return zero, false
			}
			next, ok := cur.GetIndex(idx)
			if !ok {
				var zero V
				return zero, false
			}
			cur = next
			continue
		}
		next, ok := cur.Get(seg)
		if !ok {
			var zero V
			return zero, false
		}
		cur = next
	}
	return cur, true
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

//------------------------------------------------------------------------------
// SHARED EQUALITY CORE
//------------------------------------------------------------------------------

// equalsPrimitive implements Equals for both representations so the
// primitive comparison rules cannot drift apart. Each case goes through
// the accessor of the matching family.
func equalsPrimitive[V Value[V]](v V, x any) bool {
	switch x := x.(type) {
	case nil:
		return v.IsNull()
	case bool:
		b, ok := v.AsBool()
		return ok && b == x
	case int:
		i, ok := v.AsInt64()
		return ok && i == int64(x)
	case int8:
		i, ok := AsInt8(v)
		return ok && i == x
	case int16:
		i, ok := AsInt16(v)
		return ok && i == x
	case int32:
		i, ok := AsInt32(v)
		return ok && i == x
	case int64:
		i, ok := v.AsInt64()
		return ok && i == x
	case uint:
		u, ok := v.AsUint64()
		return ok && u == uint64(x)
	case uint8:
		u, ok := AsUint8(v)
		return ok && u == x
	case uint16:
		u, ok := AsUint16(v)
		return ok && u == x
	case uint32:
		u, ok := AsUint32(v)
		return ok && u == x
	case uint64:
		u, ok := v.AsUint64()
		return ok && u == x
	case float32:
		f, ok := AsFloat32(v)
		return ok && f == x
	case float64:
		f, ok := v.AsFloat64()
		return ok && f == x
	case string:
		s, ok := v.AsString()
		return ok && s == x
	}
	return false
}
