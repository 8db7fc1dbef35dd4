/*
Package style declares the capability contract a CSS cascade and
selector-matching engine requires from a document tree, together with the
per-element style data the engine produces.

The matching engine itself is an external collaborator: it consumes the
Element and StyledElement interfaces, evaluates selectors against them,
and writes its results into each element's style-data slot. This package
only defines the vocabulary of that exchange: attribute-match operations,
case-sensitivity policies, pseudo-class and pseudo-element identifiers,
selector-invalidation flags, opaque element identity, cascade levels and
style declarations, and the guarded per-element data cell.

The contract is generic over the concrete element type rather than
dynamically dispatched, since all engine call sites are generic over one
concrete element implementation (package dom provides it).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'verdin.style'.
func tracer() tracing.Trace {
	return tracing.Select("verdin.style")
}
