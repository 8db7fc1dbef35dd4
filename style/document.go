package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// QuirksMode selects the compatibility mode the cascade engine applies
// to a document. This tree always reports NoQuirks.
type QuirksMode uint8

const (
	// NoQuirks is full standards mode.
	NoQuirks QuirksMode = iota
	// LimitedQuirks is almost-standards mode.
	LimitedQuirks
	// Quirks is quirks mode.
	Quirks
)
