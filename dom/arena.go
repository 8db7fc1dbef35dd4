package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "sync"

// Arena is a flat, append-oriented store of node records addressed by
// small integer ids. Slot 0 holds the document root; slot 1 holds the
// root element's owner-document reference point (fixed convention).
//
// Known limitation: nodes are stored inline, so appending may grow the
// backing array, after which previously handed-out Handles and opaque
// identity tokens address a stale copy of the node. Callers must not
// hold Handles or identity tokens across appends. If stable identity
// across growth is ever required, this store has to be replaced by a
// generation-checked stable-slot allocator; do not paper over it with
// per-node indirection.
type Arena struct {
	nodes []Node
	guard *sync.RWMutex // document-wide stylesheet-data lock, shared by all nodes
}

// NewArena creates an arena holding the document root (slot 0) and the
// owner-document reference point (slot 1).
func NewArena() *Arena {
	a := &Arena{guard: &sync.RWMutex{}}
	a.Append(&DocumentData{}) // id 0
	a.Append(&DocumentData{}) // id 1
	return a
}

// Append creates a node for data in the next slot and returns its id.
func (a *Arena) Append(data NodeData) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, NewNode(id, data, a.guard))
	return id
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Get returns a handle for id. It panics if id is out of range: callers
// must only use ids obtained from the tree itself.
func (a *Arena) Get(id int) Handle {
	return Handle{Node: &a.nodes[id], Arena: a}
}

// Root returns the document root handle (slot 0).
func (a *Arena) Root() Handle {
	return a.Get(0)
}

// SharedLock returns the document-wide lock guarding cascade-visible
// mutable stylesheet-derived data.
func (a *Arena) SharedLock() *sync.RWMutex {
	return a.guard
}

// InvalidateSelectorFlags clears every node's selector flags, starting a
// new invalidation epoch. Flags only grow between epochs.
func (a *Arena) InvalidateSelectorFlags() {
	for i := range a.nodes {
		a.nodes[i].ClearSelectorFlags()
	}
}
