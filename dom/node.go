package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sync"
	"sync/atomic"

	"github.com/tbeck/verdin/style"
)

// NoNode is the nil value for node ids, used where a relation is absent
// (the document root's parent, a node not yet entered into the layout
// tree).
const NoNode = -1

// Point is a position in some local coordinate space.
type Point struct {
	X, Y float64
}

// Size is a box extent.
type Size struct {
	Width, Height float64
}

// Layout is a node's final position and size as written by the layout
// engine: the location is relative to the layout parent's top-left
// corner.
type Layout struct {
	Location Point
	Size     Size
}

// Node is one arena slot. Nodes are created by the parser (append-only)
// and by layout (anonymous boxes); they are never structurally removed
// while a traversal or hit-test is in flight — that exclusion is a
// caller obligation, not enforced here.
type Node struct {
	// ID is the node's arena index. Stable and never reused while the
	// node is referenced.
	ID int
	// Parent is the DOM parent's id, or NoNode.
	Parent int
	// Children are the DOM children's ids in document order.
	Children []int
	// Data is the node's payload variant.
	Data NodeData

	// State holds the user-interaction state bits (hover, focus),
	// written by input handling.
	State style.ElementState

	// LayoutParent and LayoutChildren form the layout relation, written
	// by the layout engine. Distinct from the DOM relation: layout may
	// synthesize boxes not present in the DOM.
	LayoutParent   int
	LayoutChildren []int
	// FinalLayout is written once per layout pass by the layout engine.
	FinalLayout Layout
	// ScrollOffset is written by input handling.
	ScrollOffset Point

	// HasSnapshot reports whether a pre-mutation style snapshot exists
	// for restyle-hint computation.
	HasSnapshot bool

	// Guard protects cascade-visible mutable stylesheet-derived data
	// reachable from this node. All nodes of a document share one lock.
	Guard *sync.RWMutex

	selectorFlags   atomic.Uint32 // monotonic OR between invalidation epochs
	snapshotHandled atomic.Bool   // consumed by whichever engine worker gets there first
	styleData       style.Cell    // lazily created, guarded per node
}

// NewNode creates a node with empty relations.
func NewNode(id int, data NodeData, guard *sync.RWMutex) Node {
	return Node{
		ID:           id,
		Parent:       NoNode,
		Data:         data,
		LayoutParent: NoNode,
		Guard:        guard,
	}
}

// IsElement is true for element and anonymous-box nodes.
func (n *Node) IsElement() bool {
	switch n.Data.(type) {
	case *ElementData, *AnonymousBlockData:
		return true
	}
	return false
}

// IsTextNode is true for text nodes.
func (n *Node) IsTextNode() bool {
	_, ok := n.Data.(*TextData)
	return ok
}

// ElementData returns the element payload, or nil for non-element
// nodes. Anonymous blocks carry element data, too.
func (n *Node) ElementData() *ElementData {
	switch d := n.Data.(type) {
	case *ElementData:
		return d
	case *AnonymousBlockData:
		return &d.ElementData
	}
	return nil
}

func (n *Node) mustElementData() *ElementData {
	e := n.ElementData()
	if e == nil {
		panic("dom: not an element")
	}
	return e
}

// SelectorFlags returns the current invalidation flag set.
func (n *Node) SelectorFlags() style.SelectorFlags {
	return style.SelectorFlags(n.selectorFlags.Load())
}

// OrSelectorFlags ORs flags into the node's set. Safe under concurrent
// writers.
func (n *Node) OrSelectorFlags(flags style.SelectorFlags) {
	n.selectorFlags.Or(uint32(flags))
}

// ClearSelectorFlags resets the flag set; only whole-tree invalidation
// may call this.
func (n *Node) ClearSelectorFlags() {
	n.selectorFlags.Store(0)
}

// --- Node payload variants -------------------------------------------------

// NodeData is the tagged payload variant of a node.
type NodeData interface {
	isNodeData()
}

// DocumentData marks the document root node.
type DocumentData struct{}

// TextData is the payload of a text node.
type TextData struct {
	Content string
}

// CommentData marks a comment node.
type CommentData struct{}

// AnonymousBlockData marks a box synthesized by layout around
// block/inline content; such boxes are not part of the DOM the parser
// produced and match only the anonymous-box pseudo-element. They carry
// element data so the cascade can style them like elements.
type AnonymousBlockData struct {
	ElementData
}

func (*DocumentData) isNodeData()       {}
func (*TextData) isNodeData()           {}
func (*CommentData) isNodeData()        {}
func (*ElementData) isNodeData()        {}
func (*AnonymousBlockData) isNodeData() {}

// TagName is an element's qualified name.
type TagName struct {
	Local     string
	Namespace string
}

// Attribute is one element attribute. Attribute order is preserved.
type Attribute struct {
	Name  string
	Value string
}

// ElementData is the payload of an element node.
type ElementData struct {
	Name TagName
	// Attributes in source order.
	Attributes []Attribute
	// IDAttr caches the identifier derived once from the id attribute.
	IDAttr string
	// Checked is the checked flag of checkbox inputs.
	Checked bool
}

// Attr looks up an attribute value by name.
func (e *ElementData) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IsCheckboxInput is true for <input type="checkbox"> elements.
func (e *ElementData) IsCheckboxInput() bool {
	if e.Name.Local != "input" {
		return false
	}
	t, ok := e.Attr("type")
	return ok && t == "checkbox"
}

// CheckboxInputChecked returns the checked flag; ok is false for
// elements that are not checkbox inputs.
func (e *ElementData) CheckboxInputChecked() (checked bool, ok bool) {
	if !e.IsCheckboxInput() {
		return false, false
	}
	return e.Checked, true
}
