package sjson

// Container operations resolve alias nodes first, so reading or
// mutating through a reference acts on the referenced container.

// Size returns the number of children of an array or object, walking
// the child chain. Non-containers report 0.
func (n Node) Size() int {
	id := n.containerID()
	if id == nilID {
		return 0
	}
	count := 0
	for c := n.doc.at(id).child; c != nilID; c = n.doc.at(c).next {
		count++
	}
	return count
}

// Item returns the i-th array element by linear traversal.
func (n Node) Item(i int) Node {
	id := n.containerID()
	if id == nilID || i < 0 {
		return Node{}
	}
	c := n.doc.at(id).child
	for c != nilID && i > 0 {
		c = n.doc.at(c).next
		i--
	}
	if c == nilID {
		return Node{}
	}
	return Node{doc: n.doc, id: c}
}

// Member returns the first object member whose key hashes like key.
func (n Node) Member(key string) Node {
	return n.MemberByHash(Hash(key))
}

// MemberByHash scans the member chain comparing precomputed hashes.
// Duplicate keys are permitted; the first match in member order wins.
func (n Node) MemberByHash(h uint32) Node {
	id := n.containerID()
	if id == nilID {
		return Node{}
	}
	for c := n.doc.at(id).child; c != nilID; c = n.doc.at(c).next {
		if n.doc.at(c).nameHash == h {
			return Node{doc: n.doc, id: c}
		}
	}
	return Node{}
}

// AddItem appends item at the tail of an array's child list.
func (n Node) AddItem(item Node) error {
	id := n.containerID()
	if id == nilID || !item.Exists() {
		return ErrKindMismatch
	}
	n.doc.appendChild(id, item.id)
	return nil
}

// AddMember appends item to an object under key, computing and storing
// the key hash.
func (n Node) AddMember(key string, item Node) error {
	id := n.containerID()
	if id == nilID || !item.Exists() {
		return ErrKindMismatch
	}
	nd := n.doc.at(item.id)
	nd.nameHash = Hash(key)
	if n.doc.keepKeys {
		nd.name = key
	} else {
		nd.name = ""
	}
	n.doc.appendChild(id, item.id)
	return nil
}

// AddItemRef appends an alias for item, leaving ownership with item.
func (n Node) AddItemRef(item Node) error {
	if !n.Exists() {
		return ErrKindMismatch
	}
	return n.AddItem(n.doc.NewReference(item))
}

// AddMemberRef appends an alias for item under key.
func (n Node) AddMemberRef(key string, item Node) error {
	if !n.Exists() {
		return ErrKindMismatch
	}
	return n.AddMember(key, n.doc.NewReference(item))
}

// DetachItem unlinks the i-th child and returns it without releasing
// it; the caller must re-attach or Release the node.
func (n Node) DetachItem(i int) Node {
	c := n.Item(i)
	if !c.Exists() {
		return Node{}
	}
	n.doc.unlink(n.containerID(), c.id)
	return c
}

// DetachMember unlinks the first member matching key.
func (n Node) DetachMember(key string) Node {
	c := n.Member(key)
	if !c.Exists() {
		return Node{}
	}
	n.doc.unlink(n.containerID(), c.id)
	return c
}

// DeleteItem detaches the i-th child and releases its subtree.
func (n Node) DeleteItem(i int) bool {
	c := n.DetachItem(i)
	if !c.Exists() {
		return false
	}
	n.doc.Release(c)
	return true
}

// DeleteMember detaches the member matching key and releases it.
func (n Node) DeleteMember(key string) bool {
	c := n.DetachMember(key)
	if !c.Exists() {
		return false
	}
	n.doc.Release(c)
	return true
}

// ReplaceItem splices item into the i-th child's position and releases
// the old child. The member count never changes.
func (n Node) ReplaceItem(i int, item Node) bool {
	old := n.Item(i)
	if !old.Exists() || !item.Exists() {
		return false
	}
	n.doc.splice(n.containerID(), old.id, item.id)
	n.doc.Release(old)
	return true
}

// ReplaceMember splices item into the position of the member matching
// key, carrying the key over to the new node.
func (n Node) ReplaceMember(key string, item Node) bool {
	old := n.Member(key)
	if !old.Exists() || !item.Exists() {
		return false
	}
	nd := n.doc.at(item.id)
	nd.nameHash = Hash(key)
	if n.doc.keepKeys {
		nd.name = key
	}
	n.doc.splice(n.containerID(), old.id, item.id)
	n.doc.Release(old)
	return true
}

// containerID resolves n to an array or object node id, or nilID.
func (n Node) containerID() NodeID {
	if !n.Exists() {
		return nilID
	}
	id := n.doc.resolve(n.id)
	if id == nilID {
		return nilID
	}
	if k := n.doc.at(id).kind; k != TypeArray && k != TypeObject {
		return nilID
	}
	return id
}

func (d *Document) appendChild(parent, child NodeID) {
	c := d.at(parent).child
	if c == nilID {
		d.at(parent).child = child
		return
	}
	for d.at(c).next != nilID {
		c = d.at(c).next
	}
	d.at(c).next = child
	d.at(child).prev = c
}

// unlink removes child from parent's sibling chain, patching the
// neighbor links and the child head.
func (d *Document) unlink(parent, child NodeID) {
	nd := d.at(child)
	if nd.prev != nilID {
		d.at(nd.prev).next = nd.next
	}
	if nd.next != nilID {
		d.at(nd.next).prev = nd.prev
	}
	if d.at(parent).child == child {
		d.at(parent).child = nd.next
	}
	nd.prev, nd.next = nilID, nilID
}

// splice puts repl into old's position in parent's sibling chain and
// leaves old fully unlinked.
func (d *Document) splice(parent, old, repl NodeID) {
	on := d.at(old)
	rn := d.at(repl)
	rn.prev, rn.next = on.prev, on.next
	if rn.next != nilID {
		d.at(rn.next).prev = repl
	}
	if d.at(parent).child == old {
		d.at(parent).child = repl
	} else if rn.prev != nilID {
		d.at(rn.prev).next = repl
	}
	on.prev, on.next = nilID, nilID
}
