// Package benchmark compares sjson's parse, lookup, and serialization
// against encoding/json, tidwall/gjson, valyala/fastjson, Jeffail/gabs,
// and itchyny/gojq on the same documents.
package benchmark

import (
	"encoding/json"
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/itchyny/gojq"
	"github.com/questor/sjson"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

var smallJSON = []byte(`{"name":"John","age":30,"active":true}`)

var mediumJSON = []byte(`{
	"user": {
		"profile": {
			"name": "Alice",
			"settings": {"theme": "dark", "notifications": true}
		},
		"scores": [95, 87, 92, 78, 85]
	},
	"items": [
		{"id": 1, "label": "first"},
		{"id": 2, "label": "second"},
		{"id": 3, "label": "third"}
	],
	"count": 3
}`)

// The same medium document in the relaxed dialect.
var mediumRelaxed = []byte(`
	// fixture
	user: {
		profile: {name: "Alice" settings: {theme: "dark" notifications: true}}
		scores: [95 87 92 78 85]
	}
	items: [{id:1 label:"first"} {id:2 label:"second"} {id:3 label:"third"}]
	count = 3
`)

//------------------------------------------------------------------------------
// PARSE
//------------------------------------------------------------------------------

func BenchmarkParseSmall_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sjson.Parse(smallJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSmall_EncodingJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := json.Unmarshal(smallJSON, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSmall_FastJSON(b *testing.B) {
	var p fastjson.Parser
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(smallJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSmall_Gabs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gabs.ParseJSON(smallJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sjson.Parse(mediumJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMediumRelaxed_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sjson.Parse(mediumRelaxed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium_EncodingJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := json.Unmarshal(mediumJSON, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium_FastJSON(b *testing.B) {
	var p fastjson.Parser
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(mediumJSON); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium_Gabs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := gabs.ParseJSON(mediumJSON); err != nil {
			b.Fatal(err)
		}
	}
}

//------------------------------------------------------------------------------
// LOOKUP
//------------------------------------------------------------------------------

const lookupPath = "user.profile.name"

func BenchmarkGet_SJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		doc, err := sjson.Parse(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		if doc.Root().Get(lookupPath).Str() != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

func BenchmarkGet_SJSONPreparsed(b *testing.B) {
	doc, err := sjson.Parse(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	root := doc.Root()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if root.Get(lookupPath).Str() != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

func BenchmarkGet_GJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if gjson.GetBytes(mediumJSON, lookupPath).String() != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

func BenchmarkGet_FastJSON(b *testing.B) {
	var p fastjson.Parser
	for i := 0; i < b.N; i++ {
		v, err := p.ParseBytes(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		if string(v.GetStringBytes("user", "profile", "name")) != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

func BenchmarkGet_Gabs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		parsed, err := gabs.ParseJSON(mediumJSON)
		if err != nil {
			b.Fatal(err)
		}
		if parsed.Path(lookupPath).Data().(string) != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

func BenchmarkGet_GoJQ(b *testing.B) {
	query, err := gojq.Parse(".user.profile.name")
	if err != nil {
		b.Fatal(err)
	}
	var input interface{}
	if err := json.Unmarshal(mediumJSON, &input); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iter := query.Run(input)
		v, ok := iter.Next()
		if !ok || v.(string) != "Alice" {
			b.Fatal("wrong value")
		}
	}
}

//------------------------------------------------------------------------------
// SERIALIZE
//------------------------------------------------------------------------------

func BenchmarkMarshal_SJSON(b *testing.B) {
	doc, err := sjson.Parse(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	root := doc.Root()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sjson.Marshal(root); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_EncodingJSON(b *testing.B) {
	var v interface{}
	if err := json.Unmarshal(mediumJSON, &v); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalIndent_SJSON(b *testing.B) {
	doc, err := sjson.Parse(mediumJSON)
	if err != nil {
		b.Fatal(err)
	}
	root := doc.Root()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sjson.MarshalIndent(root); err != nil {
			b.Fatal(err)
		}
	}
}
