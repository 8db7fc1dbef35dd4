package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/tbeck/verdin/style"
)

// Handle implements the full element-capability contract the external
// cascade/selector-matching engine requires.
var _ style.StyledElement[Handle] = Handle{}

// Opaque returns the engine-visible identity token. The token is derived
// from the node's reference; it goes stale if the arena grows (see
// Arena).
func (h Handle) Opaque() style.OpaqueElement {
	return style.NewOpaqueElement(h)
}

// Unopaque recovers the handle from an identity token obtained via
// Opaque.
func Unopaque(o style.OpaqueElement) Handle {
	return o.Ref().(Handle)
}

// --- Navigation ------------------------------------------------------------

// ParentElement returns the nearest parent that is an element.
func (h Handle) ParentElement() (Handle, bool) {
	return h.TraversalParent()
}

// TraversalParent equals ParentElement; there is no shadow-DOM
// re-routing.
func (h Handle) TraversalParent() (Handle, bool) {
	p, ok := h.ParentNode()
	if !ok {
		return Handle{}, false
	}
	return p.AsElement()
}

// PrevSiblingElement returns the previous sibling element, skipping
// non-element siblings by linear scan.
func (h Handle) PrevSiblingElement() (Handle, bool) {
	for n := 1; ; n++ {
		s, ok := h.Backward(n)
		if !ok {
			return Handle{}, false
		}
		if s.IsElement() {
			return s, true
		}
	}
}

// NextSiblingElement returns the next sibling element, skipping
// non-element siblings by linear scan.
func (h Handle) NextSiblingElement() (Handle, bool) {
	for n := 1; ; n++ {
		s, ok := h.Forward(n)
		if !ok {
			return Handle{}, false
		}
		if s.IsElement() {
			return s, true
		}
	}
}

// FirstElementChild returns the first element among the DOM children,
// skipping text and comments.
func (h Handle) FirstElementChild() (Handle, bool) {
	for _, id := range h.Node.Children {
		ch := h.Get(id)
		if ch.IsElement() {
			return ch, true
		}
	}
	return Handle{}, false
}

// --- Type tests ------------------------------------------------------------

// HasLocalName compares the element's local name; false for non-element
// nodes.
func (h Handle) HasLocalName(name string) bool {
	e := h.Node.ElementData()
	return e != nil && e.Name.Local == name
}

// HasNamespace compares the element's namespace. The caller must have
// narrowed to an element first.
func (h Handle) HasNamespace(ns string) bool {
	return h.Node.mustElementData().Name.Namespace == ns
}

// IsSameType always answers false: a correct implementation trips a
// cache invariant in the engine's style-sharing candidate cache.
func (h Handle) IsSameType(_ Handle) bool {
	return false
}

// IsHTMLElementInHTMLDocument is always true.
func (h Handle) IsHTMLElementInHTMLDocument() bool {
	return true
}

// IsHTMLElement is true for element nodes.
func (h Handle) IsHTMLElement() bool {
	return h.IsElement()
}

// IsPseudoElement is true only for anonymous boxes.
func (h Handle) IsPseudoElement() bool {
	_, ok := h.Node.Data.(*AnonymousBlockData)
	return ok
}

// --- Predicates ------------------------------------------------------------

// AttrMatches looks up the attribute and evaluates the operation against
// its value. An absent attribute never matches, regardless of the
// operation.
func (h Handle) AttrMatches(name string, op style.AttrOperation) bool {
	e := h.Node.ElementData()
	if e == nil {
		return false
	}
	value, ok := e.Attr(name)
	if !ok {
		return false
	}
	return op.MatchesValue(value)
}

// HasID compares the cached identifier derived from the id attribute.
func (h Handle) HasID(id string, cs style.CaseSensitivity) bool {
	e := h.Node.ElementData()
	if e == nil || e.IDAttr == "" {
		return false
	}
	return cs.Eq(e.IDAttr, id)
}

// HasClass tokenizes the class attribute by ASCII whitespace and
// compares whole tokens under the given policy.
func (h Handle) HasClass(class string, cs style.CaseSensitivity) bool {
	e := h.Node.ElementData()
	if e == nil {
		return false
	}
	attr, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(attr) {
		if cs.Eq(token, class) {
			return true
		}
	}
	return false
}

// MatchPseudoClass evaluates a non-tree-structural pseudo-class. Classes
// this tree does not model are unconditionally false.
func (h Handle) MatchPseudoClass(pc style.PseudoClass) bool {
	switch pc {
	case style.PseudoAnyLink, style.PseudoLink:
		e := h.Node.ElementData()
		if e == nil {
			return false
		}
		if e.Name.Local != "a" && e.Name.Local != "area" {
			return false
		}
		_, ok := e.Attr("href")
		return ok
	case style.PseudoChecked:
		e := h.Node.ElementData()
		if e == nil {
			return false
		}
		checked, ok := e.CheckboxInputChecked()
		return ok && checked
	case style.PseudoHover:
		return h.Node.State.Contains(style.StateHover)
	case style.PseudoFocus:
		return h.Node.State.Contains(style.StateFocus)
	}
	return false
}

// MatchPseudoElement recognizes only the anonymous-box pseudo-element.
func (h Handle) MatchPseudoElement(pe style.PseudoElement) bool {
	if _, ok := h.Node.Data.(*AnonymousBlockData); ok {
		return pe == style.PseudoElemAnonymousBox
	}
	return false
}

// IsLink is true for <a> elements.
func (h Handle) IsLink() bool {
	return h.HasLocalName("a")
}

// IsEmpty is true for nodes without any DOM children, including text and
// comments.
func (h Handle) IsEmpty() bool {
	return len(h.Node.Children) == 0
}

// IsRoot is true for grandparent-less nodes.
func (h Handle) IsRoot() bool {
	p, ok := h.ParentNode()
	if !ok {
		return true
	}
	_, ok = p.ParentNode()
	return !ok
}

// --- Invalidation bookkeeping ----------------------------------------------

// ApplySelectorFlags records invalidation-relevant selector shapes on
// this node and its parent. The value OR'd into the parent is the
// self-directed subset; kept bug-compatible with the reference behavior
// until the invalidation pass is re-validated against a fixed variant.
func (h Handle) ApplySelectorFlags(flags style.SelectorFlags) {
	selfFlags := flags.ForSelf()
	if !selfFlags.IsEmpty() {
		h.Node.OrSelectorFlags(selfFlags)
	}

	parentFlags := flags.ForParent()
	if !parentFlags.IsEmpty() {
		if parent, ok := h.ParentNode(); ok {
			parent.Node.OrSelectorFlags(selfFlags)
		}
	}
}

// HasSelectorFlags reports whether all given flags have been recorded on
// this node.
func (h Handle) HasSelectorFlags(flags style.SelectorFlags) bool {
	return h.Node.SelectorFlags().Contains(flags)
}

// RelativeSelectorSearchDirection returns the recorded :has() search
// direction.
func (h Handle) RelativeSelectorSearchDirection() style.SelectorFlags {
	return h.Node.SelectorFlags().Intersection(style.FlagRelativeSearchDirectionAncestorSibling)
}

// --- Element state and identity --------------------------------------------

// State returns the user-interaction state bits.
func (h Handle) State() style.ElementState {
	return h.Node.State
}

// ID returns the cached identifier from the id attribute.
func (h Handle) ID() (string, bool) {
	e := h.Node.ElementData()
	if e == nil || e.IDAttr == "" {
		return "", false
	}
	return e.IDAttr, true
}

// EachClass calls back for every whitespace-separated token of the class
// attribute.
func (h Handle) EachClass(f func(class string)) {
	e := h.Node.ElementData()
	if e == nil {
		return
	}
	if attr, ok := e.Attr("class"); ok {
		for _, token := range strings.Fields(attr) {
			f(token)
		}
	}
}

// EachAttrName calls back for every attribute name, in source order.
func (h Handle) EachAttrName(f func(name string)) {
	e := h.Node.ElementData()
	if e == nil {
		return
	}
	for _, a := range e.Attributes {
		f(a.Name)
	}
}

// LocalName returns the element's local name. The caller must have
// narrowed to an element first.
func (h Handle) LocalName() string {
	return h.Node.mustElementData().Name.Local
}

// Namespace returns the element's namespace. The caller must have
// narrowed to an element first.
func (h Handle) Namespace() string {
	return h.Node.mustElementData().Name.Namespace
}

// IsHTMLDocumentBodyElement is true for a <body> element that is a child
// of the root element.
func (h Handle) IsHTMLDocumentBodyElement() bool {
	if !h.HasLocalName("body") {
		return false
	}
	rootElement, ok := h.Get(0).FirstElementChild()
	if !ok {
		return false
	}
	for _, id := range rootElement.Node.Children {
		if id == h.Node.ID {
			return true
		}
	}
	return false
}

// --- Style-data access -----------------------------------------------------

// EnsureData default-initializes the element's style-data slot if empty
// and calls f with exclusive access. Idempotent: already-computed data
// is not reset.
func (h Handle) EnsureData(f func(*style.ElementData)) {
	h.Node.styleData.Ensure(f)
}

// BorrowData calls f with shared access to the style data, or returns
// false if the slot has not been ensured.
func (h Handle) BorrowData(f func(*style.ElementData)) bool {
	return h.Node.styleData.Borrow(f)
}

// MutateData calls f with exclusive access to the style data, or returns
// false if the slot has not been ensured.
func (h Handle) MutateData(f func(*style.ElementData)) bool {
	return h.Node.styleData.Mutate(f)
}

// ClearData empties the style-data slot.
func (h Handle) ClearData() {
	h.Node.styleData.Clear()
}

// HasData reports whether the style-data slot holds data.
func (h Handle) HasData() bool {
	return h.Node.styleData.Has()
}

// --- Snapshot coordination -------------------------------------------------

// HasSnapshot reports whether a pre-mutation style snapshot exists for
// restyle-hint computation.
func (h Handle) HasSnapshot() bool {
	return h.Node.HasSnapshot
}

// HandledSnapshot reports whether a worker already consumed the
// snapshot.
func (h Handle) HandledSnapshot() bool {
	return h.Node.snapshotHandled.Load()
}

// SetHandledSnapshot marks the snapshot consumed. Workers may race to
// consume the same snapshot; setting twice is harmless.
func (h Handle) SetHandledSnapshot() {
	h.Node.snapshotHandled.Store(true)
}

// --- Traversal bookkeeping -------------------------------------------------

// HasDirtyDescendants always reports dirty: the traversal trades
// incremental pruning for correctness simplicity and re-visits the whole
// tree.
func (h Handle) HasDirtyDescendants() bool {
	return true
}

// SetDirtyDescendants is a no-op; see HasDirtyDescendants.
func (h Handle) SetDirtyDescendants() {}

// UnsetDirtyDescendants is a no-op; see HasDirtyDescendants.
func (h Handle) UnsetDirtyDescendants() {}

// StoreChildrenToProcess is unreachable under the supported traversal
// mode (no incremental child counting).
func (h Handle) StoreChildrenToProcess(_ int) {
	panic("dom: per-child task bookkeeping is not supported")
}

// DidProcessChild is unreachable under the supported traversal mode.
func (h Handle) DidProcessChild() int {
	panic("dom: per-child task bookkeeping is not supported")
}

// --- Unsupported capabilities ----------------------------------------------
//
// Shadow DOM, parts, custom states, container queries, MathML/SVG
// specialization and animation/transition presence are out of scope;
// the engine gets stable negative answers.

// ParentNodeIsShadowRoot is always false.
func (h Handle) ParentNodeIsShadowRoot() bool { return false }

// ContainingShadowHost never finds a host.
func (h Handle) ContainingShadowHost() (Handle, bool) { return Handle{}, false }

// ShadowRootHost is unreachable: the tree never reports a shadow root.
func (h Handle) ShadowRootHost() Handle {
	panic("dom: shadow roots are not supported")
}

// ImportedPart never maps a part name.
func (h Handle) ImportedPart(_ string) (string, bool) { return "", false }

// IsPart is always false.
func (h Handle) IsPart(_ string) bool { return false }

// HasCustomState is always false.
func (h Handle) HasCustomState(_ string) bool { return false }

// IsHTMLSlotElement is always false.
func (h Handle) IsHTMLSlotElement() bool { return false }

// IsMathMLElement is always false.
func (h Handle) IsMathMLElement() bool { return false }

// IsSVGElement is always false.
func (h Handle) IsSVGElement() bool { return false }

// HasPartAttr is always false.
func (h Handle) HasPartAttr() bool { return false }

// ExportsAnyPart is always false.
func (h Handle) ExportsAnyPart() bool { return false }

// MayHaveAnimations is always false.
func (h Handle) MayHaveAnimations() bool { return false }

// HasAnimations is always false.
func (h Handle) HasAnimations() bool { return false }

// HasCSSAnimations is always false.
func (h Handle) HasCSSAnimations() bool { return false }

// HasCSSTransitions is always false.
func (h Handle) HasCSSTransitions() bool { return false }

// LangAttr is never present.
func (h Handle) LangAttr() (string, bool) { return "", false }

// MatchElementLang is always false.
func (h Handle) MatchElementLang(_ string) bool { return false }

// SkipItemDisplayFixup is always false.
func (h Handle) SkipItemDisplayFixup() bool { return false }
