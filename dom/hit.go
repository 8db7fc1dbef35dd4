package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// HitResult names the node found at a queried position, with the
// position translated into that node's local coordinate space.
type HitResult struct {
	NodeID int
	X, Y   float64
}

// KeyModifiers carries the modifier-key state of a synthesized input
// event.
type KeyModifiers struct {
	Shift, Ctrl, Alt, Meta bool
}

// ClickEvent is a synthesized click at document-space coordinates.
type ClickEvent struct {
	X, Y float64
	Mods KeyModifiers
}

// Hit takes an (x, y) position relative to the *parent's* top-left
// corner and returns:
//   - ok=false if the position is outside of this node's bounds,
//   - the result of recursively calling Hit on the first layout child
//     positioned at that position, if there is one,
//   - otherwise this node, with coordinates translated into its local
//     space.
//
// The bounds are extended by the scroll offset, so hits within the
// scrolled overflow region count. Recursion runs over the layout
// children, not the DOM children, in list order: overlapping children
// resolve to the first match, not the topmost (no z-index support).
func (h Handle) Hit(x, y float64) (HitResult, bool) {
	x = x - h.Node.FinalLayout.Location.X + h.Node.ScrollOffset.X
	y = y - h.Node.FinalLayout.Location.Y + h.Node.ScrollOffset.Y

	size := h.Node.FinalLayout.Size
	if x < 0 || x > size.Width+h.Node.ScrollOffset.X ||
		y < 0 || y > size.Height+h.Node.ScrollOffset.Y {
		return HitResult{}, false
	}

	for _, id := range h.Node.LayoutChildren {
		if result, ok := h.Get(id).Hit(x, y); ok {
			return result, true
		}
	}
	return HitResult{NodeID: h.Node.ID, X: x, Y: y}, true
}

// AbsolutePosition computes the document-relative coordinates of the
// point (x, y) given in this node's local space, by accumulating layout
// offsets minus scroll offsets up the layout-parent chain.
func (h Handle) AbsolutePosition(x, y float64) Point {
	x = x + h.Node.FinalLayout.Location.X - h.Node.ScrollOffset.X
	y = y + h.Node.FinalLayout.Location.Y - h.Node.ScrollOffset.Y

	if h.Node.LayoutParent != NoNode {
		return h.Get(h.Node.LayoutParent).AbsolutePosition(x, y)
	}
	return Point{X: x, Y: y}
}

// SyntheticClickEvent synthesizes a click centered on this node's box,
// at document-space coordinates.
func (h Handle) SyntheticClickEvent(mods KeyModifiers) ClickEvent {
	pos := h.AbsolutePosition(0, 0)
	return ClickEvent{
		X:    pos.X + h.Node.FinalLayout.Size.Width/2,
		Y:    pos.Y + h.Node.FinalLayout.Size.Height/2,
		Mods: mods,
	}
}
