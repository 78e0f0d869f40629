package sjson

// Marshal renders a node and its subtree as compact text.
func Marshal(n Node) ([]byte, error) {
	return marshal(n, false)
}

// MarshalIndent renders a node with formatting: object members on their
// own tab-indented lines, array elements separated by ", ".
func MarshalIndent(n Node) ([]byte, error) {
	return marshal(n, true)
}

func marshal(n Node, indent bool) ([]byte, error) {
	if !n.Exists() {
		return nil, ErrNotFound
	}
	w := &writer{doc: n.doc, indent: indent}
	dst := make([]byte, 0, w.estimate(n.id, 0))
	return w.appendValue(dst, n.id, 0)
}

type writer struct {
	doc    *Document
	indent bool
}

// estimate computes a conservative upper bound on the rendered length
// so the output buffer is allocated once up front.
func (w *writer) estimate(id NodeID, depth int) int {
	id = w.doc.resolve(id)
	if id == nilID {
		return 0
	}
	nd := w.doc.at(id)
	switch nd.kind {
	case TypeString:
		return 6*len(nd.str) + 2
	case TypeNumber:
		return 26
	case TypeArray, TypeObject:
		n := 4 + depth
		for c := nd.child; c != nilID; c = w.doc.at(c).next {
			n += 6*len(w.doc.at(c).name) + 2
			n += w.estimate(c, depth+1)
			n += 4 + depth
		}
		return n
	}
	return 5
}

// appendValue renders one node, following alias links. Any failure
// below discards the whole output.
func (w *writer) appendValue(dst []byte, id NodeID, depth int) ([]byte, error) {
	id = w.doc.resolve(id)
	if id == nilID {
		return nil, ErrNotFound
	}
	nd := w.doc.at(id)
	switch nd.kind {
	case TypeNull:
		return append(dst, "null"...), nil
	case TypeFalse:
		return append(dst, "false"...), nil
	case TypeTrue:
		return append(dst, "true"...), nil
	case TypeNumber:
		return appendNumber(dst, nd.num), nil
	case TypeString:
		return appendQuoted(dst, nd.str), nil
	case TypeArray:
		return w.appendArray(dst, nd.child, depth)
	case TypeObject:
		return w.appendObject(dst, nd.child, depth)
	}
	return nil, ErrKindMismatch
}

func (w *writer) appendArray(dst []byte, child NodeID, depth int) ([]byte, error) {
	var err error
	dst = append(dst, '[')
	for c := child; c != nilID; c = w.doc.at(c).next {
		dst, err = w.appendValue(dst, c, depth+1)
		if err != nil {
			return nil, err
		}
		if w.doc.at(c).next != nilID {
			dst = append(dst, ',')
			if w.indent {
				dst = append(dst, ' ')
			}
		}
	}
	return append(dst, ']'), nil
}

func (w *writer) appendObject(dst []byte, child NodeID, depth int) ([]byte, error) {
	var err error
	dst = append(dst, '{')
	depth++
	if w.indent {
		dst = append(dst, '\n')
	}
	for c := child; c != nilID; c = w.doc.at(c).next {
		if !w.doc.keepKeys {
			return nil, ErrNoKeyText
		}
		if w.indent {
			dst = appendTabs(dst, depth)
		}
		dst = appendQuoted(dst, w.doc.at(c).name)
		dst = append(dst, ':')
		if w.indent {
			dst = append(dst, '\t')
		}
		dst, err = w.appendValue(dst, c, depth)
		if err != nil {
			return nil, err
		}
		if w.doc.at(c).next != nilID {
			dst = append(dst, ',')
		}
		if w.indent {
			dst = append(dst, '\n')
		}
	}
	if w.indent {
		dst = appendTabs(dst, depth-1)
	}
	return append(dst, '}'), nil
}

func appendTabs(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, '\t')
	}
	return dst
}
