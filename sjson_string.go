package sjson

// parseString decodes a quoted string literal into a string node.
func (p *parser) parseString() (NodeID, error) {
	s, err := p.decodeString()
	if err != nil {
		return nilID, err
	}
	id := p.newNode(TypeString)
	p.doc.at(id).str = s
	return id, nil
}

// decodeString consumes a quoted string, translating the standard
// escapes and \uXXXX sequences. Code points are encoded as 1-3 bytes of
// UTF-8; surrogate pairs are not reassembled, each half is encoded on
// its own. A string cut off by end of input keeps what was decoded.
func (p *parser) decodeString() (string, error) {
	data := p.data
	p.pos++ // consume opening quote
	out := make([]byte, 0, 16)
	for p.pos < len(data) && data[p.pos] != '"' {
		c := data[p.pos]
		if c != '\\' {
			out = append(out, c)
			p.pos++
			continue
		}
		esc := p.pos
		p.pos++
		if p.pos >= len(data) {
			out = append(out, '\\')
			break
		}
		switch data[p.pos] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			uc, ok := p.hex4()
			if !ok {
				return "", p.failAt(esc, "invalid \\u escape")
			}
			out = appendCodePoint(out, uc)
		default:
			out = append(out, data[p.pos])
		}
		p.pos++
	}
	if p.pos < len(data) && data[p.pos] == '"' {
		p.pos++
	}
	return string(out), nil
}

// hex4 reads the four hex digits of a \u escape. The cursor sits on the
// 'u' and is left on the final digit.
func (p *parser) hex4() (uint32, bool) {
	if p.pos+4 >= len(p.data) {
		return 0, false
	}
	var uc uint32
	for i := 0; i < 4; i++ {
		c := p.data[p.pos+1+i]
		switch {
		case c >= '0' && c <= '9':
			uc = uc<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			uc = uc<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			uc = uc<<4 | uint32(c-'A'+10)
		default:
			return 0, false
		}
	}
	p.pos += 4
	return uc, true
}

func appendCodePoint(dst []byte, uc uint32) []byte {
	switch {
	case uc < 0x80:
		return append(dst, byte(uc))
	case uc < 0x800:
		return append(dst, byte(0xC0|uc>>6), byte(0x80|uc&0x3F))
	default:
		return append(dst, byte(0xE0|uc>>12), byte(0x80|uc>>6&0x3F), byte(0x80|uc&0x3F))
	}
}

// appendQuoted renders s as a double-quoted literal, escaping the six
// standard escapes and control characters below 32 as \u00XX. Other
// bytes pass through unchanged.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
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
			if c < 32 {
				const hex = "0123456789abcdef"
				dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xF])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}
