package internal

// node gives an expression a stable identity. The resolver keys its
// scope distances by this id, so two structurally equal expressions
// at different places never share an entry.
type node struct {
	id int
}

func (n *node) nodeID() int {
	return n.id
}

// nodeIDs hands out ids for one interpreter. Ids are never reused, so
// closures created by an earlier run keep their resolution entries.
type nodeIDs struct {
	next int
}

func (n *nodeIDs) node() node {
	n.next++
	return node{id: n.next}
}
