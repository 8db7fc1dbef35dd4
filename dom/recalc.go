package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "github.com/tbeck/verdin/style"

// StyleEngine is the per-element recompute step of the external cascade
// engine. During the traversal it reads ancestor-chain context and the
// element's matched declarations (via the capability contract) and
// writes computed style into the element's ensured style-data slot.
//
// The engine may fan disjoint elements out to worker goroutines; all
// per-node state it touches through the contract is guarded or atomic.
type StyleEngine interface {
	RecalcElementStyle(el Handle)
}

// RecalcStyle drives the engine's per-element visit over the tree, in
// document (pre-)order only.
type RecalcStyle struct {
	engine StyleEngine
}

// NewRecalcStyle creates a traversal for an engine.
func NewRecalcStyle(engine StyleEngine) *RecalcStyle {
	return &RecalcStyle{engine: engine}
}

// NeedsPostorderTraversal is statically false, so a driving scheduler
// skips planning a second pass.
func (rs *RecalcStyle) NeedsPostorderTraversal() bool {
	return false
}

// ProcessPreorder styles a single node: text nodes are skipped entirely
// (text never receives style data); elements get their style-data slot
// ensured, then the engine recomputes their style, then the
// dirty-descendants marker is cleared.
func (rs *RecalcStyle) ProcessPreorder(node Handle) {
	if node.IsTextNode() {
		return
	}
	el, ok := node.AsElement()
	if !ok {
		return
	}
	el.EnsureData(func(_ *style.ElementData) {})
	rs.engine.RecalcElementStyle(el)

	// Gets set later on.
	el.UnsetDirtyDescendants()
}

// ProcessPostorder is never scheduled; see NeedsPostorderTraversal.
func (rs *RecalcStyle) ProcessPostorder(_ Handle) {
	panic("dom: postorder traversal is never scheduled")
}

// Traverse walks the subtree rooted at node in document pre-order,
// applying ProcessPreorder to every node. A traversal runs to
// completion; there is no cancellation at this layer. Structural tree
// mutation must not occur concurrently — a caller obligation.
func (rs *RecalcStyle) Traverse(node Handle) {
	tracer().Debugf("restyling subtree below node #%d", node.NodeID())
	rs.traverse(node)
}

func (rs *RecalcStyle) traverse(node Handle) {
	rs.ProcessPreorder(node)
	for _, id := range node.Node.Children {
		rs.traverse(node.Get(id))
	}
}
