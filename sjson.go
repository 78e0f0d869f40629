// Package sjson parses a relaxed JSON dialect into a mutable document
// tree and serializes it back to text.
//
// The dialect accepts everything plain JSON accepts, plus:
//   - no {} needed around the whole document
//   - "=" is allowed instead of ":"
//   - quotes around object keys are optional
//   - commas between values are optional
//   - // line comments and /* block */ comments
//
// Object members are indexed by a 32-bit hash of their key instead of
// by string comparison; duplicate keys are kept and lookup returns the
// first match in member order.
package sjson

import "errors"

// Error definitions for tree operations
var (
	ErrNotFound     = errors.New("item not found")
	ErrKindMismatch = errors.New("node kind does not support this operation")
	ErrNoKeyText    = errors.New("member key text was discarded at parse time")
)

// Kind identifies what a node holds.
type Kind uint8

const (
	TypeNull Kind = iota
	TypeFalse
	TypeTrue
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (k Kind) String() string {
	switch k {
	case TypeNull:
		return "null"
	case TypeFalse:
		return "false"
	case TypeTrue:
		return "true"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "invalid"
}

// NodeID addresses a node within a Document's arena.
type NodeID int32

const nilID NodeID = -1

// node is one arena slot. Sibling links form a doubly-linked list under
// the parent's child head. An alias node (ref) stores only the id of the
// node it stands in for; its value fields are unused and its subtree is
// never walked during release.
type node struct {
	kind Kind
	ref  bool
	free bool

	prev, next NodeID
	child      NodeID
	target     NodeID

	num      float64
	integral bool
	str      string

	nameHash uint32
	name     string
}

// Options configures parsing.
type Options struct {
	// MaxDepth bounds container nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// DiscardKeys drops member key text after hashing. Lookups still
	// work, but serializing an object fails with ErrNoKeyText.
	DiscardKeys bool
}

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 128

// Document owns an arena of nodes. All allocation for a tree goes
// through its document; nodes from different documents must not be
// linked together. A Document is not safe for concurrent mutation.
type Document struct {
	nodes    []node
	freeList []NodeID
	root     NodeID
	keepKeys bool
}

// NewDocument returns an empty document for building trees by hand.
func NewDocument() *Document {
	return &Document{root: nilID, keepKeys: true}
}

// Root returns the top-level node of a parsed document.
func (d *Document) Root() Node {
	return Node{doc: d, id: d.root}
}

func (d *Document) alloc() NodeID {
	if n := len(d.freeList); n > 0 {
		id := d.freeList[n-1]
		d.freeList = d.freeList[:n-1]
		d.nodes[id] = node{prev: nilID, next: nilID, child: nilID, target: nilID}
		return id
	}
	d.nodes = append(d.nodes, node{prev: nilID, next: nilID, child: nilID, target: nilID})
	return NodeID(len(d.nodes) - 1)
}

func (d *Document) at(id NodeID) *node {
	return &d.nodes[id]
}

// resolve chases alias links to the node that actually carries the
// value and children.
func (d *Document) resolve(id NodeID) NodeID {
	for id != nilID && d.nodes[id].ref {
		id = d.nodes[id].target
	}
	return id
}

// NewNull returns a fresh null node.
func (d *Document) NewNull() Node { return d.newLeaf(TypeNull) }

// NewBool returns a fresh true or false node.
func (d *Document) NewBool(b bool) Node {
	if b {
		return d.newLeaf(TypeTrue)
	}
	return d.newLeaf(TypeFalse)
}

// NewNumber returns a fresh number node.
func (d *Document) NewNumber(f float64) Node {
	n := d.newLeaf(TypeNumber)
	nd := d.at(n.id)
	nd.num = f
	nd.integral = f == float64(int64(f))
	return n
}

// NewString returns a fresh string node.
func (d *Document) NewString(s string) Node {
	n := d.newLeaf(TypeString)
	d.at(n.id).str = s
	return n
}

// NewArray returns a fresh empty array node.
func (d *Document) NewArray() Node { return d.newLeaf(TypeArray) }

// NewObject returns a fresh empty object node.
func (d *Document) NewObject() Node { return d.newLeaf(TypeObject) }

// NewIntArray builds an array of number nodes from ints.
func (d *Document) NewIntArray(vals []int64) Node {
	a := d.NewArray()
	for _, v := range vals {
		a.AddItem(d.NewNumber(float64(v)))
	}
	return a
}

// NewFloatArray builds an array of number nodes from floats.
func (d *Document) NewFloatArray(vals []float64) Node {
	a := d.NewArray()
	for _, v := range vals {
		a.AddItem(d.NewNumber(v))
	}
	return a
}

// NewStringArray builds an array of string nodes.
func (d *Document) NewStringArray(vals []string) Node {
	a := d.NewArray()
	for _, v := range vals {
		a.AddItem(d.NewString(v))
	}
	return a
}

func (d *Document) newLeaf(k Kind) Node {
	id := d.alloc()
	d.at(id).kind = k
	return Node{doc: d, id: id}
}

// NewReference returns an alias for n. The alias shares n's value and
// children without owning them; releasing the alias never touches the
// target. Releasing the target while aliases survive leaves them
// pointing at a recycled arena slot.
func (d *Document) NewReference(n Node) Node {
	if !n.Exists() {
		return Node{}
	}
	id := d.alloc()
	nd := d.at(id)
	nd.ref = true
	nd.target = n.id
	return Node{doc: d, id: id}
}

// Release returns n's entire owned subtree to the document's free list.
// Alias nodes are released themselves but their targets are skipped.
// The node must already be detached from any parent.
func (d *Document) Release(n Node) {
	if !n.Exists() || n.doc != d {
		return
	}
	d.releaseChain(n.id)
}

// releaseChain frees id and every following sibling, recursing into
// owned child lists.
func (d *Document) releaseChain(id NodeID) {
	for id != nilID {
		nd := d.at(id)
		next := nd.next
		if !nd.ref && nd.child != nilID {
			d.releaseChain(nd.child)
		}
		*nd = node{free: true, prev: nilID, next: nilID, child: nilID, target: nilID}
		d.freeList = append(d.freeList, id)
		id = next
	}
}

//------------------------------------------------------------------------------
// NODE HANDLE
//------------------------------------------------------------------------------

// Node is a handle to one node of a Document. The zero Node does not
// exist. A handle stays valid until its subtree is released.
type Node struct {
	doc *Document
	id  NodeID
}

// Exists reports whether the handle refers to a live node.
func (n Node) Exists() bool {
	return n.doc != nil && n.id >= 0 && int(n.id) < len(n.doc.nodes) && !n.doc.nodes[n.id].free
}

// Kind returns the node's kind, following alias links.
func (n Node) Kind() Kind {
	if !n.Exists() {
		return TypeNull
	}
	return n.doc.at(n.doc.resolve(n.id)).kind
}

// IsRef reports whether the node is an alias for another node.
func (n Node) IsRef() bool {
	return n.Exists() && n.doc.at(n.id).ref
}

// Bool returns true for a TypeTrue node and false otherwise.
func (n Node) Bool() bool {
	return n.Kind() == TypeTrue
}

// Float returns the numeric value, or 0 for non-number nodes.
func (n Node) Float() float64 {
	if !n.Exists() {
		return 0
	}
	nd := n.doc.at(n.doc.resolve(n.id))
	if nd.kind != TypeNumber {
		return 0
	}
	return nd.num
}

// Int returns the numeric value truncated toward zero. True nodes
// report 1, everything non-numeric reports 0.
func (n Node) Int() int64 {
	switch n.Kind() {
	case TypeTrue:
		return 1
	case TypeNumber:
		return int64(n.Float())
	}
	return 0
}

// IsIntegral reports whether a number node's literal had neither a
// fraction nor an exponent.
func (n Node) IsIntegral() bool {
	if !n.Exists() {
		return false
	}
	nd := n.doc.at(n.doc.resolve(n.id))
	return nd.kind == TypeNumber && nd.integral
}

// Str returns the string value, or "" for non-string nodes.
func (n Node) Str() string {
	if !n.Exists() {
		return ""
	}
	nd := n.doc.at(n.doc.resolve(n.id))
	if nd.kind != TypeString {
		return ""
	}
	return nd.str
}

// Key returns the member key text, if the node is an object member and
// key text was retained.
func (n Node) Key() string {
	if !n.Exists() {
		return ""
	}
	return n.doc.at(n.id).name
}

// KeyHash returns the 32-bit hash of the member key, or 0 when the node
// is not an object member.
func (n Node) KeyHash() uint32 {
	if !n.Exists() {
		return 0
	}
	return n.doc.at(n.id).nameHash
}

//------------------------------------------------------------------------------
// KEY HASH
//------------------------------------------------------------------------------

// Hash returns the 32-bit FNV-1a hash of a member key. Lookup compares
// these hashes only; colliding keys are not re-checked by text.
func Hash(key string) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime32
	}
	return h
}
