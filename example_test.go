package jdom

import "fmt"

func ExampleParseOwned() {
	v, _ := ParseOwned([]byte(`{"name":"Alice","age":30}`))
	name, _ := v.Get("name")
	age, _ := v.Get("age")
	fmt.Println(name, age)
	// Output: "Alice" 30
}

func ExampleParseBorrowed() {
	data := []byte(`{"greeting":"hello"}`)
	v, _ := ParseBorrowed(data)
	g, _ := v.Get("greeting")
	fmt.Println(g)
	// Output: "hello"
}

func ExampleLookup() {
	v, _ := ParseOwned([]byte(`{"users":[{"name":"Bob"},{"name":"Carol"}]}`))
	name, _ := Lookup(v, "users.1.name")
	s, _ := name.AsString()
	fmt.Println(s)
	// Output: Carol
}

func ExampleToValue() {
	v, _ := ToValue(map[string]any{"b": 2, "a": []any{1, true}})
	fmt.Println(v)
	// Output: {"a":[1,true],"b":2}
}

func ExampleEncodeValue() {
	v, _ := EncodeValue(move{dx: 1, dy: 2})
	fmt.Println(v)
	// Output: {"Move":{"dx":1,"dy":2}}
}

func ExampleEqual() {
	a, _ := ParseOwned([]byte(`{"x":[1,2]}`))
	b, _ := ParseBorrowed([]byte(`{"x":[1,2]}`))
	fmt.Println(Equal(a, b))
	// Output: true
}

func ExampleValid() {
	fmt.Println(Valid([]byte(`[1,2]`)), Valid([]byte(`[1,`)))
	// Output: true false
}

func ExampleOwned_Insert() {
	v := NewObject()
	v.Insert("kind", NewString("point"))
	v.Insert("x", NewInt(3))
	fmt.Println(v)
	// Output: {"kind":"point","x":3}
}
