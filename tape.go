// Package jdom provides a high-performance JSON document object model.
// Created by dhawalhost (2025-09-15 08:44:20)
package jdom

import (
	"bytes"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Cursor is the token-stream interface the decode engine consumes. A
// cursor walks a pre-scanned structural token sequence with fast
// look-ahead. The engine never touches raw bytes itself.
type Cursor interface {
	// Peek returns the first byte of the next token without consuming it,
	// or 0 when the stream is exhausted.
	Peek() byte

	// Skip consumes the next token, making it the current one.
	Skip()

	// CountElements returns the element count of the container whose
	// opening bracket is the current token. The engine trusts this count.
	CountElements() int

	// ParseString extracts the contents of the current string token. The
	// result references the input buffer; escape sequences are resolved in
	// place, so no allocation happens either way. The cursor does not
	// advance.
	ParseString() ([]byte, error)

	// ParseNumberRoot parses the current token as a bare top-level number,
	// which may only be followed by whitespace.
	ParseNumberRoot(negative bool) (Number, error)

	// ParseNumberNested parses the current token as a number inside a
	// container, terminated by a comma, closing bracket or whitespace.
	ParseNumberNested(negative bool) (Number, error)

	// ErrorAt wraps a category with the current byte position.
	ErrorAt(category error) error

	// AtEnd reports whether every token has been consumed.
	AtEnd() bool
}

// NewCursor scans data into a structural token tape and returns a cursor
// over it. Scanning validates string termination, literal spelling and
// bracket balance; number grammar is checked when the token is parsed.
func NewCursor(data []byte) (Cursor, error) {
	return newTape(data)
}

//------------------------------------------------------------------------------
// STRUCTURAL SCAN
//------------------------------------------------------------------------------

// tape is the concrete cursor: one linear scan records the offset of every
// structural token and precomputes per-container element counts, so
// CountElements is a table lookup instead of a re-scan.
type tape struct {
	data   []byte
	toks   []int // byte offset of each token
	ends   []int // one past the token's last byte (strings: closing quote)
	counts []int // element count, meaningful at '[' and '{' tokens
	idx    int   // current token, -1 before the first Next
}

type openFrame struct {
	tok     int  // token index of the opening bracket
	bracket byte // '[' or '{'
	commas  int
	sawElem bool
}

func newTape(data []byte) (*tape, error) {
	t := &tape{data: data, idx: -1}
	var stack []openFrame

	i := 0
	for i < len(data) {
		c := data[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		tok := len(t.toks)
		t.toks = append(t.toks, i)
		t.ends = append(t.ends, i+1)
		t.counts = append(t.counts, 0)

		switch c {
		case '{', '[':
			stack = append(stack, openFrame{tok: tok, bracket: c})
			i++
		case '}', ']':
			if len(stack) == 0 {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (c == '}') != (top.bracket == '{') {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			if top.sawElem {
				t.counts[top.tok] = top.commas + 1
			}
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i++
		case ',':
			if len(stack) == 0 {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			stack[len(stack)-1].commas++
			i++
		case ':':
			i++
		case '"':
			end, err := scanString(data, i)
			if err != nil {
				return nil, err
			}
			t.ends[tok] = end
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i = end
		case 't':
			if !bytes.HasPrefix(data[i:], trueBytes) {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			t.ends[tok] = i + 4
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i += 4
		case 'f':
			if !bytes.HasPrefix(data[i:], falseBytes) {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			t.ends[tok] = i + 5
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i += 5
		case 'n':
			if !bytes.HasPrefix(data[i:], nullBytes) {
				return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
			}
			t.ends[tok] = i + 4
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i += 4
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			end := i + 1
			for end < len(data) && isNumberByte(data[end]) {
				end++
			}
			t.ends[tok] = end
			if len(stack) > 0 {
				stack[len(stack)-1].sawElem = true
			}
			i = end
		default:
			return nil, &ParseError{Offset: i, Err: ErrUnexpectedCharacter}
		}
	}

	if len(stack) > 0 {
		return nil, &ParseError{Offset: len(data), Err: ErrUnexpectedEnd}
	}
	if len(t.toks) == 0 {
		return nil, &ParseError{Offset: 0, Err: ErrEmptyInput}
	}
	return t, nil
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
		c == '+' || c == '-'
}

// scanString returns one past the closing quote of the string starting at
// the opening quote data[start].
func scanString(data []byte, start int) (int, error) {
	i := start + 1
	for i < len(data) {
		switch data[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, &ParseError{Offset: start, Err: ErrStringUnterminated}
}

//------------------------------------------------------------------------------
// CURSOR OPERATIONS
//------------------------------------------------------------------------------

func (t *tape) Peek() byte {
	if t.idx+1 >= len(t.toks) {
		return 0
	}
	return t.data[t.toks[t.idx+1]]
}

func (t *tape) Skip() { t.idx++ }

func (t *tape) CountElements() int {
	if t.idx < 0 || t.idx >= len(t.toks) {
		return 0
	}
	return t.counts[t.idx]
}

func (t *tape) AtEnd() bool { return t.idx >= len(t.toks)-1 }

func (t *tape) ErrorAt(category error) error {
	off := len(t.data)
	if t.idx >= 0 && t.idx < len(t.toks) {
		off = t.toks[t.idx]
	}
	return &ParseError{Offset: off, Err: category}
}

//------------------------------------------------------------------------------
// STRING EXTRACTION
//------------------------------------------------------------------------------

func (t *tape) ParseString() ([]byte, error) {
	if t.idx < 0 || t.idx >= len(t.toks) {
		return nil, &ParseError{Offset: len(t.data), Err: ErrUnexpectedEnd}
	}
	if t.data[t.toks[t.idx]] != '"' {
		return nil, t.ErrorAt(ErrUnexpectedCharacter)
	}
	start, end := t.toks[t.idx], t.ends[t.idx]
	raw := t.data[start+1 : end-1]

	// Fast path: nothing to unescape, hand back the view as is.
	esc := bytes.IndexByte(raw, '\\')
	if esc < 0 {
		return raw, nil
	}

	// Unescaping only ever shrinks, so resolve escapes in place inside the
	// token's own span.
	r, w := esc, esc
	for r < len(raw) {
		if raw[r] != '\\' {
			raw[w] = raw[r]
			r++
			w++
			continue
		}
		if r+1 >= len(raw) {
			return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidEscape}
		}
		r++
		switch raw[r] {
		case '"', '\\', '/':
			raw[w] = raw[r]
			r++
			w++
		case 'b':
			raw[w] = '\b'
			r++
			w++
		case 'f':
			raw[w] = '\f'
			r++
			w++
		case 'n':
			raw[w] = '\n'
			r++
			w++
		case 'r':
			raw[w] = '\r'
			r++
			w++
		case 't':
			raw[w] = '\t'
			r++
			w++
		case 'u':
			r++
			cp, ok := hex4(raw[r:])
			if !ok {
				return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidUTF8}
			}
			r += 4
			ru := rune(cp)
			if utf16.IsSurrogate(ru) {
				if r+6 > len(raw) || raw[r] != '\\' || raw[r+1] != 'u' {
					return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidUTF8}
				}
				lo, ok := hex4(raw[r+2:])
				if !ok {
					return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidUTF8}
				}
				ru = utf16.DecodeRune(ru, rune(lo))
				if ru == utf8.RuneError {
					return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidUTF8}
				}
				r += 6
			}
			w += utf8.EncodeRune(raw[w:], ru)
		default:
			return nil, &ParseError{Offset: start + 1 + r, Err: ErrInvalidEscape}
		}
	}
	return raw[:w], nil
}

func hex4(b []byte) (uint16, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var v uint16
	for j := 0; j < 4; j++ {
		c := b[j]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint16(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint16(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint16(c-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}

//------------------------------------------------------------------------------
// NUMBER EXTRACTION
//------------------------------------------------------------------------------

func (t *tape) ParseNumberRoot(negative bool) (Number, error) {
	start, end := t.toks[t.idx], t.ends[t.idx]
	for i := end; i < len(t.data); i++ {
		c := t.data[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return Number{}, &ParseError{Offset: i, Err: ErrTrailingCharacters}
		}
	}
	return t.parseNumber(start, end, negative)
}

func (t *tape) ParseNumberNested(negative bool) (Number, error) {
	start, end := t.toks[t.idx], t.ends[t.idx]
	if end < len(t.data) {
		switch c := t.data[end]; c {
		case ',', ']', '}', ' ', '\t', '\n', '\r':
		default:
			return Number{}, &ParseError{Offset: end, Err: ErrInvalidNumber}
		}
	}
	return t.parseNumber(start, end, negative)
}

func (t *tape) parseNumber(start, end int, negative bool) (Number, error) {
	raw := t.data[start:end]
	if !validNumber(raw, negative) {
		return Number{}, &ParseError{Offset: start, Err: ErrInvalidNumber}
	}

	// Integer fast path, float fallback on range overflow the way
	// encoding/json and gjson behave.
	if bytes.IndexAny(raw, ".eE") < 0 {
		n, err := strconv.ParseInt(bytesToString(raw), 10, 64)
		if err == nil {
			return IntNumber(n), nil
		}
	}
	f, err := strconv.ParseFloat(bytesToString(raw), 64)
	if err != nil {
		return Number{}, &ParseError{Offset: start, Err: ErrInvalidNumber}
	}
	return FloatNumber(f), nil
}

// validNumber checks the JSON number grammar, which is stricter than what
// strconv accepts (no leading zeros, no bare trailing dot, no leading '+').
func validNumber(raw []byte, negative bool) bool {
	i := 0
	if negative {
		if len(raw) == 0 || raw[0] != '-' {
			return false
		}
		i++
	}
	// Integer part.
	if i >= len(raw) {
		return false
	}
	if raw[i] == '0' {
		i++
	} else if raw[i] >= '1' && raw[i] <= '9' {
		for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
			i++
		}
	} else {
		return false
	}
	// Fraction part.
	if i < len(raw) && raw[i] == '.' {
		i++
		if i >= len(raw) || raw[i] < '0' || raw[i] > '9' {
			return false
		}
		for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
			i++
		}
	}
	// Exponent part.
	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		i++
		if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
			i++
		}
		if i >= len(raw) || raw[i] < '0' || raw[i] > '9' {
			return false
		}
		for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
			i++
		}
	}
	return i == len(raw)
}
