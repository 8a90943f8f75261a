// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-16 14:05:12)
package jdom

import (
	"fmt"
	"reflect"
	"strings"
)

// EncodeOptions represents additional options for encode operations.
type EncodeOptions struct {
	// MaxDepth bounds container nesting. Encoding fails with
	// ErrDepthExceeded beyond it.
	MaxDepth int
}

// DefaultEncodeOptions provides default settings for encode operations.
var DefaultEncodeOptions = EncodeOptions{
	MaxDepth: 1024,
}

// Encodable is implemented by values that can describe their own shape.
// The implementation calls exactly one Encoder method and returns its
// result.
type Encodable interface {
	Encode(e Encoder) (*Owned, error)
}

// Encoder is the visitor side of the encode protocol: one method per
// shape. The engine provides two implementations, the value encoder and
// the restricted key encoder handed to object keys, which accepts only
// shapes with a lossless string form.
//
// Sub-64-bit integers widen exactly. Uint64 stores its argument by bit
// reinterpretation into the signed 64-bit slot, so magnitudes of 2^63 and
// above come back negative; this is documented behavior, not corrected.
type Encoder interface {
	Null() (*Owned, error)
	Bool(v bool) (*Owned, error)
	Int8(v int8) (*Owned, error)
	Int16(v int16) (*Owned, error)
	Int32(v int32) (*Owned, error)
	Int64(v int64) (*Owned, error)
	Uint8(v uint8) (*Owned, error)
	Uint16(v uint16) (*Owned, error)
	Uint32(v uint32) (*Owned, error)
	Uint64(v uint64) (*Owned, error)
	Float32(v float32) (*Owned, error)
	Float64(v float64) (*Owned, error)
	Rune(v rune) (*Owned, error)
	Str(v string) (*Owned, error)

	// Bytes maps a byte sequence to an array of per-byte integers; there
	// is no dedicated binary variant.
	Bytes(v []byte) (*Owned, error)

	// UnitVariant maps a bare named alternative to its name as a string.
	UnitVariant(name string) (*Owned, error)

	// NewtypeVariant maps a named alternative with one payload to
	// {name: payload}.
	NewtypeVariant(name string, v Encodable) (*Owned, error)

	// Seq starts an incrementally built array. n is a capacity hint.
	Seq(n int) (*ArrayEncoder, error)

	// TupleVariant starts an array that End wraps into {name: [...]}.
	TupleVariant(name string, n int) (*ArrayEncoder, error)

	// Map starts an incrementally built object. n is a capacity hint.
	Map(n int) (*ObjectEncoder, error)

	// StructVariant starts an object that End wraps into {name: {...}}.
	StructVariant(name string, n int) (*ObjectEncoder, error)
}

// EncodeValue runs the encode engine over a self-describing value.
func EncodeValue(v Encodable) (*Owned, error) {
	return EncodeValueWithOptions(v, nil)
}

// EncodeValueWithOptions is EncodeValue with explicit options. A nil opts
// means DefaultEncodeOptions.
func EncodeValueWithOptions(v Encodable, opts *EncodeOptions) (*Owned, error) {
	if opts == nil {
		opts = &DefaultEncodeOptions
	}
	return v.Encode(valueEncoder{maxDepth: opts.MaxDepth})
}

//------------------------------------------------------------------------------
// VALUE ENCODER
//------------------------------------------------------------------------------

type valueEncoder struct {
	depth    int
	maxDepth int
}

func (e valueEncoder) Null() (*Owned, error) { return NewNull(), nil }
func (e valueEncoder) Bool(v bool) (*Owned, error) { return NewBool(v), nil }
func (e valueEncoder) Int8(v int8) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Int16(v int16) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Int32(v int32) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Int64(v int64) (*Owned, error) { return NewInt(v), nil }
func (e valueEncoder) Uint8(v uint8) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Uint16(v uint16) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Uint32(v uint32) (*Owned, error) { return NewInt(int64(v)), nil }
func (e valueEncoder) Uint64(v uint64) (*Owned, error) { return NewUint(v), nil }

func (e valueEncoder) Float32(v float32) (*Owned, error) {
	return NewFloat(float64(v)), nil
}
func (e valueEncoder) Float64(v float64) (*Owned, error) { return NewFloat(v), nil }
func (e valueEncoder) Rune(v rune) (*Owned, error) { return NewString(string(v)), nil }
func (e valueEncoder) Str(v string) (*Owned, error) { return NewString(v), nil }

func (e valueEncoder) Bytes(v []byte) (*Owned, error) {
	elems := make([]*Owned, len(v))
	for i, b := range v {
		elems[i] = NewInt(int64(b))
	}
	return &Owned{t: TypeArray, a: elems}, nil
}

func (e valueEncoder) UnitVariant(name string) (*Owned, error) {
	return NewString(name), nil
}

func (e valueEncoder) NewtypeVariant(name string, v Encodable) (*Owned, error) {
	if e.depth >= e.maxDepth {
		return nil, ErrDepthExceeded
	}
	payload, err := v.Encode(e.child())
	if err != nil {
		return nil, err
	}
	return &Owned{t: TypeObject, o: map[string]*Owned{name: payload}}, nil
}

func (e valueEncoder) Seq(n int) (*ArrayEncoder, error) {
	if e.depth >= e.maxDepth {
		return nil, ErrDepthExceeded
	}
	if n < 0 {
		n = 0
	}
	return &ArrayEncoder{elem: e.child(), elems: make([]*Owned, 0, n)}, nil
}

func (e valueEncoder) TupleVariant(name string, n int) (*ArrayEncoder, error) {
	a, err := e.Seq(n)
	if err != nil {
		return nil, err
	}
	a.variant = name
	return a, nil
}

func (e valueEncoder) Map(n int) (*ObjectEncoder, error) {
	if e.depth >= e.maxDepth {
		return nil, ErrDepthExceeded
	}
	if n < 0 {
		n = 0
	}
	return &ObjectEncoder{elem: e.child(), fields: make(map[string]*Owned, n)}, nil
}

func (e valueEncoder) StructVariant(name string, n int) (*ObjectEncoder, error) {
	o, err := e.Map(n)
	if err != nil {
		return nil, err
	}
	o.variant = name
	return o, nil
}

func (e valueEncoder) child() valueEncoder {
	return valueEncoder{depth: e.depth + 1, maxDepth: e.maxDepth}
}

//------------------------------------------------------------------------------
// INCREMENTAL CONTAINER ENCODERS
//------------------------------------------------------------------------------

// ArrayEncoder builds an array one element at a time. Each element
// recurses through the full encode entry point; the first failure
// short-circuits and no partial container escapes.
type ArrayEncoder struct {
	elem    valueEncoder
	elems   []*Owned
	variant string
}

// Element encodes v and appends it.
func (a *ArrayEncoder) Element(v Encodable) error {
	ov, err := v.Encode(a.elem)
	if err != nil {
		return err
	}
	a.elems = append(a.elems, ov)
	return nil
}

// End finishes the array. A tuple variant comes back as {name: [...]}.
func (a *ArrayEncoder) End() (*Owned, error) {
	arr := &Owned{t: TypeArray, a: a.elems}
	if a.variant == "" {
		return arr, nil
	}
	return &Owned{t: TypeObject, o: map[string]*Owned{a.variant: arr}}, nil
}

// ObjectEncoder builds an object one entry at a time. Entry is the
// preferred call; the split Key/Value pair exists for callers that receive
// keys and values separately. Keys go through the restricted key encoder:
// only a plain string or a bare variant name is accepted, everything else
// fails with ErrKeyMustBeAString.
type ObjectEncoder struct {
	elem    valueEncoder
	fields  map[string]*Owned
	variant string
	pending string
	hasKey  bool
}

// Entry encodes one key/value pair.
func (o *ObjectEncoder) Entry(key, val Encodable) error {
	if err := o.Key(key); err != nil {
		return err
	}
	return o.Value(val)
}

// Key encodes and stages the key for the next Value call.
func (o *ObjectEncoder) Key(key Encodable) error {
	kv, err := key.Encode(keyEncoder{})
	if err != nil {
		return err
	}
	s, _ := kv.AsString()
	o.pending = s
	o.hasKey = true
	return nil
}

// Value encodes val under the staged key, last write wins. Calling it
// without a staged key is a bug in the calling Encodable, never a
// consequence of untrusted input, so it panics instead of returning an
// error.
func (o *ObjectEncoder) Value(val Encodable) error {
	if !o.hasKey {
		panic("jdom: ObjectEncoder.Value called before Key")
	}
	ov, err := val.Encode(o.elem)
	if err != nil {
		return err
	}
	o.fields[o.pending] = ov
	o.pending = ""
	o.hasKey = false
	return nil
}

// End finishes the object. A struct variant comes back as {name: {...}}.
func (o *ObjectEncoder) End() (*Owned, error) {
	obj := &Owned{t: TypeObject, o: o.fields}
	if o.variant == "" {
		return obj, nil
	}
	return &Owned{t: TypeObject, o: map[string]*Owned{o.variant: obj}}, nil
}

//------------------------------------------------------------------------------
// RESTRICTED KEY ENCODER
//------------------------------------------------------------------------------

// keyEncoder accepts the two shapes with a lossless string form and
// rejects everything else. Transparent wrappers still recurse here on
// their own, so a newtype around a string remains a valid key.
type keyEncoder struct{}

func (keyEncoder) Null() (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Bool(bool) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Int8(int8) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Int16(int16) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Int32(int32) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Int64(int64) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Uint8(uint8) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Uint16(uint16) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Uint32(uint32) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Uint64(uint64) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Float32(float32) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Float64(float64) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Rune(rune) (*Owned, error) { return nil, ErrKeyMustBeAString }
func (keyEncoder) Str(v string) (*Owned, error) { return NewString(v), nil }
func (keyEncoder) Bytes([]byte) (*Owned, error) { return nil, ErrKeyMustBeAString }

func (keyEncoder) UnitVariant(name string) (*Owned, error) {
	return NewString(name), nil
}

func (keyEncoder) NewtypeVariant(string, Encodable) (*Owned, error) {
	return nil, ErrKeyMustBeAString
}

func (keyEncoder) Seq(int) (*ArrayEncoder, error) {
	return nil, ErrKeyMustBeAString
}

func (keyEncoder) TupleVariant(string, int) (*ArrayEncoder, error) {
	return nil, ErrKeyMustBeAString
}

func (keyEncoder) Map(int) (*ObjectEncoder, error) {
	return nil, ErrKeyMustBeAString
}

func (keyEncoder) StructVariant(string, int) (*ObjectEncoder, error) {
	return nil, ErrKeyMustBeAString
}

//------------------------------------------------------------------------------
// REFLECT BRIDGE
//------------------------------------------------------------------------------

// ToValue converts any plain Go value into an Owned tree through the same
// shape rules as the Encodable protocol, so hand-written Encodable
// implementations and reflected values cannot disagree.
func ToValue(x any) (*Owned, error) {
	return ToValueWithOptions(x, nil)
}

// ToValueWithOptions is ToValue with explicit options.
func ToValueWithOptions(x any, opts *EncodeOptions) (*Owned, error) {
	if opts == nil {
		opts = &DefaultEncodeOptions
	}
	return encodeAny(valueEncoder{maxDepth: opts.MaxDepth}, x)
}

// anyEncodable adapts an arbitrary Go value to the Encodable protocol, so
// reflected elements and keys flow through the same engine, including the
// restricted key encoder.
type anyEncodable struct{ x any }

func (a anyEncodable) Encode(e Encoder) (*Owned, error) { return encodeAny(e, a.x) }

func encodeAny(e Encoder, x any) (*Owned, error) {
	switch v := x.(type) {
	case nil:
		return e.Null()
	case Encodable:
		return v.Encode(e)
	case *Owned:
		return v, nil
	case *Borrowed:
		return v.ToOwned(), nil
	case bool:
		return e.Bool(v)
	case int:
		return e.Int64(int64(v))
	case int8:
		return e.Int8(v)
	case int16:
		return e.Int16(v)
	case int32:
		return e.Int32(v)
	case int64:
		return e.Int64(v)
	case uint:
		return e.Uint64(uint64(v))
	case uint8:
		return e.Uint8(v)
	case uint16:
		return e.Uint16(v)
	case uint32:
		return e.Uint32(v)
	case uint64:
		return e.Uint64(v)
	case float32:
		return e.Float32(v)
	case float64:
		return e.Float64(v)
	case string:
		return e.Str(v)
	case []byte:
		return e.Bytes(v)
	}
	return encodeReflect(e, reflect.ValueOf(x))
}

func encodeReflect(e Encoder, rv reflect.Value) (*Owned, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		// Absent optionals become null, present ones recurse
		// transparently.
		if rv.IsNil() {
			return e.Null()
		}
		return encodeAny(e, rv.Elem().Interface())
	case reflect.Bool:
		return e.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return e.Uint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return e.Float64(rv.Float())
	case reflect.String:
		return e.Str(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(buf), rv)
			return e.Bytes(buf)
		}
		seq, err := e.Seq(rv.Len())
		if err != nil {
			return nil, err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := seq.Element(anyEncodable{rv.Index(i).Interface()}); err != nil {
				return nil, err
			}
		}
		return seq.End()
	case reflect.Map:
		obj, err := e.Map(rv.Len())
		if err != nil {
			return nil, err
		}
		iter := rv.MapRange()
		for iter.Next() {
			k := anyEncodable{iter.Key().Interface()}
			if err := obj.Entry(k, anyEncodable{iter.Value().Interface()}); err != nil {
				return nil, err
			}
		}
		return obj.End()
	case reflect.Struct:
		rt := rv.Type()
		obj, err := e.Map(rt.NumField())
		if err != nil {
			return nil, err
		}
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, ok := f.Tag.Lookup("json"); ok {
				tag, _, _ = strings.Cut(tag, ",")
				if tag == "-" {
					continue
				}
				if tag != "" {
					name = tag
				}
			}
			if err := obj.Entry(anyEncodable{name}, anyEncodable{rv.Field(i).Interface()}); err != nil {
				return nil, err
			}
		}
		return obj.End()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}
