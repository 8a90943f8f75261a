// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-16 17:40:29)
package jdom

import (
	"math"
	"sort"
	"strconv"

	"github.com/tidwall/pretty"
)

// MarshalJSON renders the tree as compact JSON text. Object keys are
// emitted in sorted order so the output is deterministic.
func (v *Owned) MarshalJSON() ([]byte, error) {
	return AppendJSON[*Owned](nil, v), nil
}

// String renders the tree as compact JSON text.
func (v *Owned) String() string {
	return string(AppendJSON[*Owned](nil, v))
}

// MarshalJSON renders the tree as compact JSON text. Object keys are
// emitted in sorted order so the output is deterministic.
func (v *Borrowed) MarshalJSON() ([]byte, error) {
	return AppendJSON[*Borrowed](nil, v), nil
}

// String renders the tree as compact JSON text.
func (v *Borrowed) String() string {
	return string(AppendJSON[*Borrowed](nil, v))
}

// Pretty formats JSON text with proper indentation.
func Pretty(data []byte) []byte {
	return pretty.Pretty(data)
}

// Ugly removes all unnecessary whitespace from JSON text.
func Ugly(data []byte) []byte {
	return pretty.Ugly(data)
}

// PrettyValue renders a value tree of any representation as indented JSON
// text.
func PrettyValue[V Value[V]](v V) []byte {
	return pretty.Pretty(AppendJSON(nil, v))
}

//------------------------------------------------------------------------------
// COMPACT WRITER
//------------------------------------------------------------------------------

// AppendJSON appends the compact JSON text of a value tree of any
// representation to dst and returns the extended buffer.
func AppendJSON[V Value[V]](dst []byte, v V) []byte {
	switch v.ValueType() {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		b, _ := v.AsBool()
		if b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeInt:
		i, _ := v.AsInt64()
		return strconv.AppendInt(dst, i, 10)
	case TypeFloat:
		f, _ := v.AsFloat64()
		return appendFloat(dst, f)
	case TypeString:
		s, _ := v.AsString()
		return appendString(dst, s)
	case TypeArray:
		elems, _ := v.AsArray()
		dst = append(dst, '[')
		for i, e := range elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, e)
		}
		return append(dst, ']')
	case TypeObject:
		fields, _ := v.AsObject()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		dst = append(dst, '{')
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, k)
			dst = append(dst, ':')
			dst = AppendJSON(dst, fields[k])
		}
		return append(dst, '}')
	}
	return dst
}

// appendFloat writes a float in the shortest round-trippable form. JSON
// has no encoding for NaN or the infinities, so those come out as null.
// Whole-valued floats keep a trailing ".0" so the text re-decodes as a
// float rather than an integer.
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	n := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	for _, c := range dst[n:] {
		if c == '.' || c == 'e' || c == 'E' {
			return dst
		}
	}
	return append(dst, ".0"...)
}

// appendString writes a quoted JSON string, escaping only what the JSON
// grammar requires.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			const hex = "0123456789abcdef"
			dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
