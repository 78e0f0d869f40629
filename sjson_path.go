package sjson

import "strings"

// Get walks a dotted path from n and returns the node it lands on.
// Each segment selects an object member by key or, on arrays, an
// element by decimal index. A '\' escapes a literal '.' or '\' inside
// a segment. An empty path returns n itself.
func (n Node) Get(path string) Node {
	cur := n
	for path != "" {
		if !cur.Exists() {
			return Node{}
		}
		var seg string
		seg, path = nextSegment(path)
		switch cur.Kind() {
		case TypeObject:
			cur = cur.Member(seg)
		case TypeArray:
			idx, ok := parseIndex(seg)
			if !ok {
				return Node{}
			}
			cur = cur.Item(idx)
		default:
			return Node{}
		}
	}
	return cur
}

// nextSegment splits off the first path segment, resolving escapes.
func nextSegment(path string) (seg, rest string) {
	if !strings.ContainsAny(path, `.\`) {
		return path, ""
	}
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '\\' && i+1 < len(path) {
			i++
			b.WriteByte(path[i])
			continue
		}
		if c == '.' {
			return b.String(), path[i+1:]
		}
		b.WriteByte(c)
	}
	return b.String(), ""
}

func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	idx := 0
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
		idx = idx*10 + int(seg[i]-'0')
	}
	return idx, true
}

// EscapePathSegment escapes characters that have special meaning in
// paths so a key containing dots or backslashes is treated literally.
func EscapePathSegment(seg string) string {
	if !strings.ContainsAny(seg, `.\`) {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c == '.' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// BuildEscapedPath joins literal segments using dot notation after
// escaping each one.
func BuildEscapedPath(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = EscapePathSegment(s)
	}
	return strings.Join(escaped, ".")
}
