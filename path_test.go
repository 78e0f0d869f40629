package sjson

import "testing"

var pathDoc = `{
	user: {
		name: "Alice"
		scores: [95, 87, 92]
		"dotted.key": {inner: true}
	}
	items: ["a", "b"]
}`

func TestGetPath(t *testing.T) {
	doc, err := ParseString(pathDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root := doc.Root()

	tests := []struct {
		name string
		path string
		chk  func(Node) bool
	}{
		{"Member", "user.name", func(n Node) bool { return n.Str() == "Alice" }},
		{"ArrayIndex", "user.scores.1", func(n Node) bool { return n.Int() == 87 }},
		{"TopArray", "items.0", func(n Node) bool { return n.Str() == "a" }},
		{"EmptyPathIsSelf", "", func(n Node) bool { return n.Kind() == TypeObject && n.Size() == 2 }},
		{"EscapedDot", `user.dotted\.key.inner`, func(n Node) bool { return n.Bool() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := root.Get(tt.path)
			if !n.Exists() {
				t.Fatalf("expected %q to resolve", tt.path)
			}
			if !tt.chk(n) {
				t.Errorf("unexpected value at %q", tt.path)
			}
		})
	}

	misses := []string{
		"missing",
		"user.missing",
		"user.scores.9",
		"user.scores.x",
		"user.name.deeper",
	}
	for _, path := range misses {
		if root.Get(path).Exists() {
			t.Errorf("expected %q to not resolve", path)
		}
	}
}

func TestEscapePathSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a.b", `a\.b`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapePathSegment(tt.in); got != tt.want {
			t.Errorf("EscapePathSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildEscapedPath(t *testing.T) {
	if got := BuildEscapedPath("user", "dotted.key", "inner"); got != `user.dotted\.key.inner` {
		t.Errorf("unexpected path: %q", got)
	}
	if got := BuildEscapedPath(); got != "" {
		t.Errorf("expected empty path, got %q", got)
	}

	doc, err := ParseString(pathDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	n := doc.Root().Get(BuildEscapedPath("user", "dotted.key", "inner"))
	if !n.Bool() {
		t.Error("expected built path to resolve to true")
	}
}
