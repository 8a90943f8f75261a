package jdom

import (
	"errors"
	"strings"
	"testing"
)

// TestParseOwnedBasic tests scalar and container decoding
func TestParseOwnedBasic(t *testing.T) {
	cases := []struct {
		json  string
		check func(v *Owned) bool
	}{
		{`null`, func(v *Owned) bool { return v.IsNull() }},
		{`true`, func(v *Owned) bool { return v.Equals(true) }},
		{`false`, func(v *Owned) bool { return v.Equals(false) }},
		{`42`, func(v *Owned) bool { return v.Equals(int64(42)) }},
		{`-42`, func(v *Owned) bool { return v.Equals(int64(-42)) }},
		{`1.25`, func(v *Owned) bool { return v.Equals(1.25) }},
		{`"hi"`, func(v *Owned) bool { return v.Equals("hi") }},
		{`  "hi"  `, func(v *Owned) bool { return v.Equals("hi") }},
		{`[]`, func(v *Owned) bool { a, ok := v.AsArray(); return ok && len(a) == 0 }},
		{`{}`, func(v *Owned) bool { o, ok := v.AsObject(); return ok && len(o) == 0 }},
		{`[1,"x",null]`, func(v *Owned) bool {
			a, ok := v.AsArray()
			return ok && len(a) == 3 && a[0].Equals(int64(1)) && a[1].Equals("x") && a[2].IsNull()
		}},
		{`{"a":{"b":[true]}}`, func(v *Owned) bool {
			got, ok := Lookup(v, "a.b.0")
			return ok && got.Equals(true)
		}},
	}
	for _, c := range cases {
		v, err := ParseOwned([]byte(c.json))
		if err != nil {
			t.Errorf("%s: %v", c.json, err)
			continue
		}
		if !c.check(v) {
			t.Errorf("%s: decoded to %s", c.json, v)
		}
	}
}

// TestParseErrors tests decode failures and their reported offsets
func TestParseErrors(t *testing.T) {
	cases := []struct {
		json   string
		err    error
		offset int
	}{
		{`[1,]`, ErrUnexpectedCharacter, 3},
		{`[,1]`, ErrUnexpectedCharacter, 1},
		{`{"a"}`, ErrUnexpectedEnd, 5},
		{`{1:2}`, ErrUnexpectedCharacter, 1},
		{`[1] 2`, ErrTrailingCharacters, 4},
		{`{} {}`, ErrTrailingCharacters, 3},
		{`1 2`, ErrTrailingCharacters, 2},
		{`"a" "b"`, ErrTrailingCharacters, 4},
		{`null null`, ErrTrailingCharacters, 5},
	}
	for _, c := range cases {
		_, err := ParseOwned([]byte(c.json))
		if !errors.Is(err, c.err) {
			t.Errorf("%q: err = %v, want %v", c.json, err, c.err)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: error is not a *ParseError", c.json)
			continue
		}
		if pe.Offset != c.offset {
			t.Errorf("%q: offset = %d, want %d", c.json, pe.Offset, c.offset)
		}
	}
}

// TestDuplicateKeys tests last-write-wins insertion
func TestDuplicateKeys(t *testing.T) {
	v, err := ParseOwned([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	if len(o) != 2 {
		t.Fatalf("got %d fields, want 2", len(o))
	}
	got, _ := v.Get("a")
	if !got.Equals(int64(3)) {
		t.Errorf("duplicate key should keep the last value, got %s", got)
	}

	bv, err := ParseBorrowed([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatal(err)
	}
	bgot, _ := bv.Get("a")
	if !bgot.Equals(int64(3)) {
		t.Error("borrowed duplicate key should keep the last value")
	}
}

// TestCrossRepresentationEqual tests that both representations decode the
// same document to equal trees
func TestCrossRepresentationEqual(t *testing.T) {
	docs := []string{
		`null`,
		`[1,2.5,"x\n",true,null,{"k":[{}]}]`,
		`{"users":[{"name":"Alice","age":30},{"name":"Bob","age":-1}],"ok":true}`,
	}
	for _, doc := range docs {
		ov, err := ParseOwned([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		bv, err := ParseBorrowed([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		if !Equal(ov, bv) || !Equal(bv, ov) {
			t.Errorf("%s: representations disagree", doc)
		}
		if !Equal(bv.ToOwned(), ov) {
			t.Errorf("%s: ToOwned disagrees", doc)
		}
	}
}

// TestBorrowedZeroCopy tests that borrowed strings are views into the
// input buffer
func TestBorrowedZeroCopy(t *testing.T) {
	data := []byte(`["hello"]`)
	v, err := ParseBorrowed(data)
	if err != nil {
		t.Fatal(err)
	}
	elem, _ := v.GetIndex(0)
	s, _ := elem.AsString()
	if &stringToBytes(s)[0] != &data[2] {
		t.Error("borrowed string should alias the input buffer")
	}
}

// TestBorrowedDetach tests that ToOwned copies out of the buffer
func TestBorrowedDetach(t *testing.T) {
	data := []byte(`{"k":"value"}`)
	bv, err := ParseBorrowed(data)
	if err != nil {
		t.Fatal(err)
	}
	ov := bv.ToOwned()
	for i := range data {
		data[i] = 'x'
	}
	got, ok := ov.Get("k")
	if !ok || !got.Equals("value") {
		t.Error("owned copy should survive buffer reuse")
	}
}

// TestParseOwnedString tests the string entry point
func TestParseOwnedString(t *testing.T) {
	src := `{"msg":"a\tb"}`
	v, err := ParseOwnedString(src)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := v.Get("msg")
	if !got.Equals("a\tb") {
		t.Errorf("got %s", got)
	}
	if src != `{"msg":"a\tb"}` {
		t.Error("input string must not be mutated")
	}
}

// TestDepthLimit tests the nesting bound
func TestDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 4) + "1" + strings.Repeat("]", 4)
	opts := &ParseOptions{MaxDepth: 3}
	_, err := ParseOwnedWithOptions([]byte(deep), opts)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("err = %v, want ErrDepthExceeded", err)
	}
	if _, err := ParseOwnedWithOptions([]byte(deep), &ParseOptions{MaxDepth: 4}); err != nil {
		t.Errorf("depth 4 should fit in MaxDepth 4: %v", err)
	}

	deepObj := strings.Repeat(`{"a":`, 4) + "1" + strings.Repeat("}", 4)
	if _, err := ParseOwnedWithOptions([]byte(deepObj), opts); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("object nesting: err = %v, want ErrDepthExceeded", err)
	}

	// The default limit holds for anything sane.
	ok := strings.Repeat("[", 1024) + "1" + strings.Repeat("]", 1024)
	if _, err := ParseOwned([]byte(ok)); err != nil {
		t.Errorf("1024 levels should fit the default: %v", err)
	}
	deep = strings.Repeat("[", 1025) + "1" + strings.Repeat("]", 1025)
	if _, err := ParseOwned([]byte(deep)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("1025 levels: err = %v, want ErrDepthExceeded", err)
	}
}

// TestValid tests the discarding validation entry point
func TestValid(t *testing.T) {
	for _, j := range []string{`null`, `[1,2]`, `{"a":{"b":"c"}}`, `-1.5e3`} {
		if !Valid([]byte(j)) {
			t.Errorf("Valid(%q) = false", j)
		}
	}
	for _, j := range []string{``, `[1,`, `{"a"}`, `01`, `[1,]`, `tru`, `1 2`} {
		if Valid([]byte(j)) {
			t.Errorf("Valid(%q) = true", j)
		}
	}
}

//------------------------------------------------------------------------------
// SCRIPTED CURSOR
//------------------------------------------------------------------------------

// fakeCursor feeds the engine a scripted token stream so tests can make
// the look-ahead count disagree with the tokens.
type fakeCursor struct {
	nexts []byte
	pos   int
	count int
	num   Number
}

func (c *fakeCursor) Peek() byte {
	if c.pos >= len(c.nexts) {
		return 0
	}
	return c.nexts[c.pos]
}

func (c *fakeCursor) Skip()                        { c.pos++ }
func (c *fakeCursor) CountElements() int           { return c.count }
func (c *fakeCursor) AtEnd() bool                  { return c.pos >= len(c.nexts) }
func (c *fakeCursor) ErrorAt(cat error) error      { return cat }
func (c *fakeCursor) ParseString() ([]byte, error) { return nil, nil }

func (c *fakeCursor) ParseNumberRoot(bool) (Number, error)   { return c.num, nil }
func (c *fakeCursor) ParseNumberNested(bool) (Number, error) { return c.num, nil }

// TestEmptyContainerIgnoresLookahead tests that a zero count short-cuts
// to an empty container no matter what tokens follow
func TestEmptyContainerIgnoresLookahead(t *testing.T) {
	c := &fakeCursor{nexts: []byte{'['}, count: 0}
	v, err := DecodeCursor[*Owned](c, OwnedBuilder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := v.AsArray()
	if !ok || len(a) != 0 {
		t.Errorf("got %s, want []", v)
	}

	c = &fakeCursor{nexts: []byte{'{'}, count: 0}
	v, err = DecodeCursor[*Owned](c, OwnedBuilder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	o, ok := v.AsObject()
	if !ok || len(o) != 0 {
		t.Errorf("got %s, want {}", v)
	}
}

// TestEngineTrustsCount tests that the engine consumes exactly count
// elements without re-checking the stream
func TestEngineTrustsCount(t *testing.T) {
	c := &fakeCursor{
		nexts: []byte{'[', '1', ',', '1', ']'},
		count: 2,
		num:   IntNumber(7),
	}
	v, err := DecodeCursor[*Owned](c, OwnedBuilder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := v.AsArray()
	if !ok || len(a) != 2 || !a[0].Equals(int64(7)) || !a[1].Equals(int64(7)) {
		t.Errorf("got %s", v)
	}
}

// TestEmptyStreamIsUnexpectedEnd tests the engine's end-of-stream branch
func TestEmptyStreamIsUnexpectedEnd(t *testing.T) {
	c := &fakeCursor{}
	if _, err := DecodeCursor[*Owned](c, OwnedBuilder{}, nil); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("err = %v, want ErrUnexpectedEnd", err)
	}
}
