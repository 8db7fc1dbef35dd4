/*
Package fetch supplies raw bytes to the document core: stylesheet text,
image data and other sub-resources, keyed by URL with scheme dispatch
(data:, file:, http/https).

This is the only layer in the core's immediate neighborhood that returns
recoverable errors rather than panicking or silently ignoring: failures
are surfaced as typed errors distinguishing URL-parse, transport,
file-I/O, image-decode and vector-parse causes, so callers can decide on
a fallback (e.g., a broken-image placeholder).

The HTTP client and the font database are process-scoped services
injected into the Service rather than ambient globals, to keep the core
testable without process-wide state.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fetch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'verdin.fetch'.
func tracer() tracing.Trace {
	return tracing.Select("verdin.fetch")
}
