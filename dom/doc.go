/*
Package dom implements an arena-indexed document tree that can
participate in styling by an external CSS cascade/selector-matching
engine, and that answers geometric queries against the tree's computed
layout.

# Tree Implementation

Nodes live in a flat, append-oriented arena and reference each other by
small integer ids rather than pointers. Tree algorithms operate on a
transient Handle — a (node, arena) pair — so no persistent node pointers
are handed out. Two adjacency relations coexist on every node and must
never be conflated: the DOM relation (Parent/Children, wired by the
parser) and the layout relation (LayoutParent/LayoutChildren, wired by
the layout engine, which may synthesize anonymous boxes absent from the
DOM).

# Styling

Handle implements the element-capability contract of package style:
navigation, attribute/class/id matching with exact CSS semantics,
pseudo-class and pseudo-element predicates, selector-invalidation
bookkeeping, presentational-hint synthesis and guarded access to
per-element style data. RecalcStyle drives the engine's per-element
visit over the tree in document pre-order.

# Geometry

Hit and AbsolutePosition answer point queries over the layout relation,
for consumption by input-event dispatch.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'verdin.dom'.
func tracer() tracing.Trace {
	return tracing.Select("verdin.dom")
}
