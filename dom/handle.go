package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"
	"sync"

	"github.com/tbeck/verdin/style"
)

// Handle is a transient, non-owning cursor: a node reference paired with
// its arena, so that tree algorithms can be written without persistent
// node pointers. Handles are cheap values; they must not outlive an
// append to the arena (see Arena).
type Handle struct {
	Node  *Node
	Arena *Arena
}

// Get returns a handle for another node of the same arena. Panics if id
// is out of range.
func (h Handle) Get(id int) Handle {
	return h.Arena.Get(id)
}

// NodeID returns the node's arena id. (ID is taken by the identifier
// attribute accessor of the element contract.)
func (h Handle) NodeID() int {
	return h.Node.ID
}

// ChildIndex returns the position of this node within its parent's
// children, or ok=false if the node has no parent.
func (h Handle) ChildIndex() (int, bool) {
	if h.Node.Parent == NoNode {
		return 0, false
	}
	siblings := h.Arena.Get(h.Node.Parent).Node.Children
	for i, id := range siblings {
		if id == h.Node.ID {
			return i, true
		}
	}
	return 0, false
}

// Forward returns the nth next sibling by raw list position, not
// filtered to elements.
func (h Handle) Forward(n int) (Handle, bool) {
	return h.sibling(n)
}

// Backward returns the nth previous sibling by raw list position, not
// filtered to elements.
func (h Handle) Backward(n int) (Handle, bool) {
	return h.sibling(-n)
}

func (h Handle) sibling(offset int) (Handle, bool) {
	if h.Node.Parent == NoNode {
		return Handle{}, false
	}
	idx, _ := h.ChildIndex()
	siblings := h.Arena.Get(h.Node.Parent).Node.Children
	target := idx + offset
	if target < 0 || target >= len(siblings) {
		return Handle{}, false
	}
	return h.Get(siblings[target]), true
}

// ParentNode returns the DOM parent.
func (h Handle) ParentNode() (Handle, bool) {
	if h.Node.Parent == NoNode {
		return Handle{}, false
	}
	return h.Get(h.Node.Parent), true
}

// FirstChild returns the first DOM child of any kind.
func (h Handle) FirstChild() (Handle, bool) {
	if len(h.Node.Children) == 0 {
		return Handle{}, false
	}
	return h.Get(h.Node.Children[0]), true
}

// LastChild returns the last DOM child of any kind.
func (h Handle) LastChild() (Handle, bool) {
	if len(h.Node.Children) == 0 {
		return Handle{}, false
	}
	return h.Get(h.Node.Children[len(h.Node.Children)-1]), true
}

// PrevSibling returns the previous sibling of any kind.
func (h Handle) PrevSibling() (Handle, bool) {
	return h.Backward(1)
}

// NextSibling returns the next sibling of any kind.
func (h Handle) NextSibling() (Handle, bool) {
	return h.Forward(1)
}

// IsElement is true for element and anonymous-box nodes.
func (h Handle) IsElement() bool {
	return h.Node.IsElement()
}

// IsTextNode is true for text nodes.
func (h Handle) IsTextNode() bool {
	return h.Node.IsTextNode()
}

// AsElement narrows the handle to an element; callers must have
// established element-ness this way before using element-only
// accessors.
func (h Handle) AsElement() (Handle, bool) {
	if h.Node.IsElement() {
		return h, true
	}
	return Handle{}, false
}

// AsDocument narrows the handle to the document node.
func (h Handle) AsDocument() (Handle, bool) {
	if _, ok := h.Node.Data.(*DocumentData); ok {
		return h, true
	}
	return Handle{}, false
}

// OwnerDoc returns the owner-document reference point (slot 1, fixed
// convention).
func (h Handle) OwnerDoc() Handle {
	return h.Get(1)
}

// IsInDocument is true for every node of the arena.
func (h Handle) IsInDocument() bool {
	return true
}

// DebugID returns the node id for diagnostics.
func (h Handle) DebugID() int {
	return h.Node.ID
}

// --- Document-level facts --------------------------------------------------

// IsHTMLDocument is always true; the arena only ever holds HTML
// documents.
func (h Handle) IsHTMLDocument() bool {
	return true
}

// QuirksMode is always "no quirks".
func (h Handle) QuirksMode() style.QuirksMode {
	return style.NoQuirks
}

// SharedLock returns the document-wide lock guarding cascade-visible
// mutable stylesheet-derived data.
func (h Handle) SharedLock() *sync.RWMutex {
	return h.Node.Guard
}

// --- Text content ----------------------------------------------------------

// TextContent returns the concatenated text of the subtree rooted at
// this node.
func (h Handle) TextContent() string {
	var sb strings.Builder
	h.writeTextContent(&sb)
	return sb.String()
}

func (h Handle) writeTextContent(sb *strings.Builder) {
	switch d := h.Node.Data.(type) {
	case *TextData:
		sb.WriteString(d.Content)
	case *ElementData, *AnonymousBlockData:
		for _, id := range h.Node.Children {
			h.Get(id).writeTextContent(sb)
		}
	}
}
