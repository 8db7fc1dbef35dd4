/*
Package cssom abstracts the stylesheets the cascade engine consumes.

The cascade/selector-matching engine is an external collaborator of this
module: the document tree (package dom) exposes the element-capability
contract, the fetch layer supplies raw stylesheet text, and the engine
combines both into computed styles. In between sits this package: it
de-couples concrete CSS-parser implementations from the engine by
introducing the interfaces StyleSheet and Rule. A concrete
implementation backed by the douceur parser may be found in the
sub-package douceuradapter.

Having this interface imposes a performance hit. However, this module
will never trade modularity and clarity for performance. Clients in need
of a production grade browser engine (where performance is key) should
opt for headless versions of the main browser projects.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'verdin.style'.
func tracer() tracing.Trace {
	return tracing.Select("verdin.style")
}
