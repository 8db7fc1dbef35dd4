package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Element is the capability set a selector-matching engine requires from
// an element. It is generic over the concrete element type E, so that
// engine code is monomorphic over one implementation and navigation
// methods can return concrete values instead of boxed interfaces.
//
// Methods covering capabilities this tree does not model (shadow DOM,
// parts, custom states) give stable negative answers; they exist so the
// engine never has to special-case this tree.
type Element[E any] interface {
	// Opaque returns the engine-visible identity token of the element.
	Opaque() OpaqueElement

	// --- Navigation ---------------------------------------------------

	ParentElement() (E, bool)
	// TraversalParent equals ParentElement; there is no shadow-DOM
	// re-routing.
	TraversalParent() (E, bool)
	PrevSiblingElement() (E, bool)
	NextSiblingElement() (E, bool)
	FirstElementChild() (E, bool)

	// --- Type tests ---------------------------------------------------

	HasLocalName(name string) bool
	HasNamespace(ns string) bool
	IsSameType(other E) bool
	IsHTMLElementInHTMLDocument() bool
	IsPseudoElement() bool

	// --- Predicates ---------------------------------------------------

	AttrMatches(name string, op AttrOperation) bool
	HasID(id string, cs CaseSensitivity) bool
	HasClass(class string, cs CaseSensitivity) bool
	MatchPseudoClass(pc PseudoClass) bool
	MatchPseudoElement(pe PseudoElement) bool
	IsLink() bool
	IsEmpty() bool
	IsRoot() bool

	// --- Invalidation bookkeeping ------------------------------------

	ApplySelectorFlags(flags SelectorFlags)
	HasSelectorFlags(flags SelectorFlags) bool

	// --- Unsupported capabilities (stable negatives) -------------------

	ParentNodeIsShadowRoot() bool
	ContainingShadowHost() (E, bool)
	ImportedPart(name string) (string, bool)
	IsPart(name string) bool
	HasCustomState(name string) bool
}

// StyledElement extends Element with the capabilities the cascade (as
// opposed to bare selector matching) requires: element state, per-node
// style-data access, snapshot coordination, presentational hints and
// traversal bookkeeping.
type StyledElement[E any] interface {
	Element[E]

	State() ElementState
	ID() (string, bool)
	EachClass(func(class string))
	EachAttrName(func(name string))
	LocalName() string
	Namespace() string
	IsHTMLDocumentBodyElement() bool

	// --- Style-data access --------------------------------------------

	EnsureData(f func(*ElementData))
	BorrowData(f func(*ElementData)) bool
	MutateData(f func(*ElementData)) bool
	ClearData()
	HasData() bool

	// --- Snapshot coordination ----------------------------------------

	HasSnapshot() bool
	HandledSnapshot() bool
	SetHandledSnapshot()

	// --- Traversal bookkeeping ----------------------------------------

	HasDirtyDescendants() bool
	SetDirtyDescendants()
	UnsetDirtyDescendants()

	// --- Presentational hints -----------------------------------------

	SynthesizePresentationalHints(sink DeclarationSink)

	// --- Invalidation search state ------------------------------------

	RelativeSelectorSearchDirection() SelectorFlags

	// --- Unsupported capabilities (stable negatives) -------------------

	IsMathMLElement() bool
	IsSVGElement() bool
	MayHaveAnimations() bool
	HasAnimations() bool
	HasCSSAnimations() bool
	HasCSSTransitions() bool
	HasPartAttr() bool
	ExportsAnyPart() bool
	LangAttr() (string, bool)
	MatchElementLang(value string) bool
}
