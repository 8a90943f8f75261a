package jdom

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

const benchDoc = `{
	"id": 982347,
	"name": "inventory-snapshot",
	"active": true,
	"ratio": 0.9913,
	"items": [
		{"sku": "A-1001", "qty": 12, "price": 19.99, "tags": ["new", "sale"]},
		{"sku": "A-1002", "qty": 0, "price": 5.25, "tags": []},
		{"sku": "B-2001", "qty": 113, "price": 0.99, "tags": ["bulk"]},
		{"sku": "C-3001", "qty": 45, "price": 112.5, "tags": ["heavy", "fragile"]}
	],
	"warehouse": {
		"city": "Oslo",
		"coords": {"lat": 59.9139, "lon": 10.7522},
		"open": null
	}
}`

func BenchmarkParseOwned(b *testing.B) {
	data := []byte(benchDoc)
	buf := make([]byte, len(data))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, data)
		if _, err := ParseOwned(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseBorrowed(b *testing.B) {
	data := []byte(benchDoc)
	buf := make([]byte, len(data))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, data)
		if _, err := ParseBorrowed(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseStdlib(b *testing.B) {
	data := []byte(benchDoc)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseFastjson(b *testing.B) {
	var p fastjson.Parser
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	v, err := ParseOwned([]byte(benchDoc))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := Lookup(v, "warehouse.coords.lat"); !ok {
			b.Fatal("lookup failed")
		}
	}
}

func BenchmarkGjsonGet(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !gjson.Get(benchDoc, "warehouse.coords.lat").Exists() {
			b.Fatal("get failed")
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	v, err := ParseOwned([]byte(benchDoc))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.MarshalJSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalStdlib(b *testing.B) {
	var v any
	if err := json.Unmarshal([]byte(benchDoc), &v); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValid(b *testing.B) {
	data := []byte(benchDoc)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Valid(data) {
			b.Fatal("invalid")
		}
	}
}
