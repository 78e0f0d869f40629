package sjson

import "fmt"

// ParseError reports where in the input parsing stopped.
type ParseError struct {
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Parse parses a relaxed JSON document with default options.
func Parse(data []byte) (*Document, error) {
	return ParseWithOptions(data, Options{})
}

// ParseString is like Parse but accepts a string input.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// ParseWithOptions parses a relaxed JSON document. A document is a
// {}-delimited object, a []-delimited array, or bare object members up
// to end of input. The whole input must be consumed; trailing
// characters after a delimited document are an error.
func ParseWithOptions(data []byte, opts Options) (*Document, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	doc := &Document{root: nilID, keepKeys: !opts.DiscardKeys}
	p := &parser{data: data, doc: doc, maxDepth: opts.MaxDepth}

	if err := p.skip(); err != nil {
		return nil, err
	}
	var root NodeID
	var err error
	if p.pos < len(data) && (data[p.pos] == '{' || data[p.pos] == '[') {
		root, err = p.parseValue()
	} else {
		root, err = p.parseObjectBody(true)
	}
	if err != nil {
		return nil, err
	}
	if err := p.skip(); err != nil {
		return nil, err
	}
	if p.pos != len(data) {
		return nil, p.failf("unexpected trailing characters")
	}
	doc.root = root
	return doc, nil
}

type parser struct {
	data     []byte
	pos      int
	depth    int
	maxDepth int
	doc      *Document
}

func (p *parser) failf(format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Offset: p.pos}
}

func (p *parser) failAt(off int, msg string) error {
	return &ParseError{Message: msg, Offset: off}
}

//------------------------------------------------------------------------------
// SKIPPER
//------------------------------------------------------------------------------

// skip advances past whitespace (any byte <= 32), // line comments and
// /* block */ comments, looping until none remain. An unterminated
// block comment fails at its opening "/*".
func (p *parser) skip() error {
	for {
		for p.pos < len(p.data) && p.data[p.pos] <= 32 {
			p.pos++
		}
		if p.pos+1 >= len(p.data) || p.data[p.pos] != '/' {
			return nil
		}
		switch p.data[p.pos+1] {
		case '/':
			p.pos += 2
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
		case '*':
			start := p.pos
			p.pos += 2
			for {
				if p.pos+1 >= len(p.data) {
					return p.failAt(start, "unterminated block comment")
				}
				if p.data[p.pos] == '*' && p.data[p.pos+1] == '/' {
					p.pos += 2
					break
				}
				p.pos++
			}
		default:
			return nil
		}
	}
}

//------------------------------------------------------------------------------
// VALUE DISPATCHER
//------------------------------------------------------------------------------

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// keyword matches a literal keyword with a boundary check: the keyword
// must not be directly followed by an identifier character, so "nullx"
// is an unexpected token rather than null plus garbage.
func (p *parser) keyword(word string) bool {
	end := p.pos + len(word)
	if end > len(p.data) || string(p.data[p.pos:end]) != word {
		return false
	}
	if end < len(p.data) && isIdentChar(p.data[end]) {
		return false
	}
	p.pos = end
	return true
}

// parseValue dispatches on the next token and returns the new node.
// The cursor must already be past any leading whitespace.
func (p *parser) parseValue() (NodeID, error) {
	if p.pos >= len(p.data) {
		return nilID, p.failf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == 'n' && p.keyword("null"):
		return p.newNode(TypeNull), nil
	case c == 'f' && p.keyword("false"):
		return p.newNode(TypeFalse), nil
	case c == 't' && p.keyword("true"):
		return p.newNode(TypeTrue), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '[':
		return p.parseArray()
	case c == '{':
		p.pos++
		if err := p.skip(); err != nil {
			return nilID, err
		}
		return p.parseObjectBody(false)
	case c == '"':
		return p.parseString()
	}
	return nilID, p.failf("unexpected token")
}

func (p *parser) newNode(k Kind) NodeID {
	id := p.doc.alloc()
	p.doc.at(id).kind = k
	return id
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.failf("maximum nesting depth exceeded")
	}
	return nil
}

//------------------------------------------------------------------------------
// ARRAY / OBJECT BUILDERS
//------------------------------------------------------------------------------

func (p *parser) parseArray() (NodeID, error) {
	if err := p.enter(); err != nil {
		return nilID, err
	}
	defer func() { p.depth-- }()

	arr := p.newNode(TypeArray)
	p.pos++ // consume '['
	if err := p.skip(); err != nil {
		return nilID, err
	}
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	var tail NodeID = nilID
	for {
		child, err := p.parseValue()
		if err != nil {
			return nilID, err
		}
		p.link(arr, tail, child)
		tail = child
		if err := p.skip(); err != nil {
			return nilID, err
		}
		if p.pos >= len(p.data) {
			return nilID, p.failf("unexpected end of input in array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		// A comma before the next element is accepted but not required.
		if p.data[p.pos] == ',' {
			p.pos++
			if err := p.skip(); err != nil {
				return nilID, err
			}
		}
	}
}

// parseObjectBody parses object members up to '}' or, in the implicit
// top-level form, end of input. The opening brace, if any, has already
// been consumed and leading whitespace skipped.
func (p *parser) parseObjectBody(implicit bool) (NodeID, error) {
	if err := p.enter(); err != nil {
		return nilID, err
	}
	defer func() { p.depth-- }()

	obj := p.newNode(TypeObject)
	if !implicit && p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	var tail NodeID = nilID
	for {
		child, err := p.parseMember()
		if err != nil {
			return nilID, err
		}
		p.link(obj, tail, child)
		tail = child
		if err := p.skip(); err != nil {
			return nilID, err
		}
		if p.pos >= len(p.data) {
			if implicit {
				return obj, nil
			}
			return nilID, p.failf("unexpected end of input in object")
		}
		if !implicit && p.data[p.pos] == '}' {
			p.pos++
			return obj, nil
		}
		if p.data[p.pos] == ',' {
			p.pos++
			if err := p.skip(); err != nil {
				return nilID, err
			}
		}
	}
}

// parseMember parses one key, a ':' or '=' separator, and a value. The
// key's hash is computed immediately; the key text is kept only when
// the document retains keys.
func (p *parser) parseMember() (NodeID, error) {
	key, err := p.parseKey()
	if err != nil {
		return nilID, err
	}
	if err := p.skip(); err != nil {
		return nilID, err
	}
	if p.pos >= len(p.data) || (p.data[p.pos] != ':' && p.data[p.pos] != '=') {
		return nilID, p.failf("expected ':' or '=' after object key")
	}
	p.pos++
	if err := p.skip(); err != nil {
		return nilID, err
	}
	child, err := p.parseValue()
	if err != nil {
		return nilID, err
	}
	nd := p.doc.at(child)
	nd.nameHash = Hash(key)
	if p.doc.keepKeys {
		nd.name = key
	}
	return child, nil
}

// parseKey accepts a quoted string or a bareword identifier.
func (p *parser) parseKey() (string, error) {
	if p.pos >= len(p.data) {
		return "", p.failf("unexpected end of input")
	}
	if p.data[p.pos] == '"' {
		return p.decodeString()
	}
	if !isIdentStart(p.data[p.pos]) {
		return "", p.failf("invalid object key")
	}
	start := p.pos
	for p.pos < len(p.data) && isIdentChar(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos]), nil
}

// link appends child at the tail of parent's child list.
func (p *parser) link(parent, tail, child NodeID) {
	if tail == nilID {
		p.doc.at(parent).child = child
		return
	}
	p.doc.at(tail).next = child
	p.doc.at(child).prev = tail
}
