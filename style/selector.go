package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// CaseSensitivity is the comparison policy for identifier matching
// (classes, ids, attribute values). The policy is supplied by the
// matching engine per selector.
type CaseSensitivity uint8

const (
	// CaseSensitive compares identifiers byte for byte.
	CaseSensitive CaseSensitivity = iota
	// ASCIICaseInsensitive folds ASCII letters before comparing.
	ASCIICaseInsensitive
)

// Eq compares two identifiers under the policy.
func (cs CaseSensitivity) Eq(a, b string) bool {
	if cs == ASCIICaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// AttrOperator is the comparison operator of an attribute selector,
// e.g. the '~=' in [class~="warn"].
type AttrOperator uint8

const (
	// AttrExists matches mere presence of the attribute ([attr]).
	AttrExists AttrOperator = iota
	// AttrEqual matches exact string equality ([attr="v"]).
	AttrEqual
	// AttrIncludes matches any ASCII-whitespace-separated token ([attr~="v"]).
	AttrIncludes
	// AttrDashMatch matches the value exactly or as a "v-" prefix ([attr|="v"]).
	AttrDashMatch
	// AttrPrefix matches a literal prefix ([attr^="v"]).
	AttrPrefix
	// AttrSubstring matches literal containment ([attr*="v"]).
	AttrSubstring
	// AttrSuffix matches a literal suffix ([attr$="v"]).
	AttrSuffix
)

// AttrOperation is one attribute-selector test: an operator, an operand
// and a comparison policy.
type AttrOperation struct {
	Operator AttrOperator
	Value    string
	Case     CaseSensitivity
}

// Exists returns the presence-only operation.
func Exists() AttrOperation {
	return AttrOperation{Operator: AttrExists}
}

// WithValue returns an operation comparing against a value.
func WithValue(op AttrOperator, value string) AttrOperation {
	return AttrOperation{Operator: op, Value: value}
}

// MatchesValue evaluates the operation against an attribute value that is
// known to be present. The comparison policy is currently not applied to
// value operators; comparisons are case-sensitive throughout, matching
// the engine's current configuration.
func (op AttrOperation) MatchesValue(attrValue string) bool {
	value := op.Value
	switch op.Operator {
	case AttrExists:
		return true
	case AttrEqual:
		return attrValue == value
	case AttrIncludes:
		for _, word := range strings.Fields(attrValue) {
			if word == value {
				return true
			}
		}
		return false
	case AttrDashMatch:
		// Exactly the value, or the value immediately followed by a
		// hyphen (U+002D).
		return strings.HasPrefix(attrValue, value) &&
			(len(attrValue) == len(value) || attrValue[len(value)] == '-')
	case AttrPrefix:
		return strings.HasPrefix(attrValue, value)
	case AttrSubstring:
		return strings.Contains(attrValue, value)
	case AttrSuffix:
		return strings.HasSuffix(attrValue, value)
	}
	return false
}

// PseudoClass identifies a non-tree-structural pseudo-class. The list
// covers every class the matching engine may query; classes this tree
// does not model always evaluate to false.
type PseudoClass uint8

const (
	PseudoActive PseudoClass = iota
	PseudoAnyLink
	PseudoAutofill
	PseudoChecked
	PseudoDefault
	PseudoDefined
	PseudoDisabled
	PseudoEnabled
	PseudoFocus
	PseudoFocusVisible
	PseudoFocusWithin
	PseudoFullscreen
	PseudoHover
	PseudoInRange
	PseudoIndeterminate
	PseudoInvalid
	PseudoLang
	PseudoLink
	PseudoModal
	PseudoOptional
	PseudoOutOfRange
	PseudoPlaceholderShown
	PseudoPopoverOpen
	PseudoReadOnly
	PseudoReadWrite
	PseudoRequired
	PseudoTarget
	PseudoUserInvalid
	PseudoUserValid
	PseudoValid
	PseudoVisited
)

// PseudoElement identifies a pseudo-element. Only the anonymous-box
// pseudo-element is modeled by this tree; all others never match.
type PseudoElement uint8

const (
	PseudoElemAnonymousBox PseudoElement = iota
	PseudoElemBefore
	PseudoElemAfter
	PseudoElemFirstLine
	PseudoElemFirstLetter
	PseudoElemSelection
	PseudoElemMarker
	PseudoElemPlaceholder
	PseudoElemBackdrop
)

// ElementState is a bitset of user-interaction states the input layer
// maintains per element.
type ElementState uint16

const (
	// StateHover is set while the pointer is over the element.
	StateHover ElementState = 1 << iota
	// StateFocus is set while the element has input focus.
	StateFocus
	// StateActive is set while the element is being activated.
	StateActive
)

// Contains reports whether all states in s are set.
func (es ElementState) Contains(s ElementState) bool {
	return es&s == s
}

// SelectorFlags record, per element, which invalidation-relevant selector
// shapes have matched against it. The engine ORs flags in during
// matching; they grow monotonically until a whole-tree invalidation.
//
// Some flags describe the element a selector matched against itself,
// others describe that element's parent; ForSelf and ForParent split a
// combined set accordingly.
type SelectorFlags uint32

const (
	// FlagHasEmptySelector marks an element matched by :empty (self-directed).
	FlagHasEmptySelector SelectorFlags = 1 << iota
	// FlagHasSlowSelector marks slow-invalidation selectors (parent-directed).
	FlagHasSlowSelector
	// FlagHasSlowSelectorLaterSiblings marks sibling-combinator matches
	// (parent-directed).
	FlagHasSlowSelectorLaterSiblings
	// FlagHasEdgeChildSelector marks :first-child/:last-child style
	// matches (parent-directed).
	FlagHasEdgeChildSelector
	// FlagAnchorsRelativeSelector marks anchors of :has() selectors
	// (self-directed).
	FlagAnchorsRelativeSelector
	// FlagAnchorsRelativeSelectorSiblings is the sibling variant
	// (self-directed).
	FlagAnchorsRelativeSelectorSiblings
	// FlagRelativeSearchDirectionAncestor records :has() search direction
	// (self-directed).
	FlagRelativeSearchDirectionAncestor
	// FlagRelativeSearchDirectionSibling records :has() search direction
	// (self-directed).
	FlagRelativeSearchDirectionSibling
)

// FlagRelativeSearchDirectionAncestorSibling combines both search
// directions.
const FlagRelativeSearchDirectionAncestorSibling = FlagRelativeSearchDirectionAncestor | FlagRelativeSearchDirectionSibling

const selfDirectedFlags = FlagHasEmptySelector |
	FlagAnchorsRelativeSelector |
	FlagAnchorsRelativeSelectorSiblings |
	FlagRelativeSearchDirectionAncestor |
	FlagRelativeSearchDirectionSibling

const parentDirectedFlags = FlagHasSlowSelector |
	FlagHasSlowSelectorLaterSiblings |
	FlagHasEdgeChildSelector

// ForSelf returns the subset of flags directed at the matched element
// itself.
func (f SelectorFlags) ForSelf() SelectorFlags {
	return f & selfDirectedFlags
}

// ForParent returns the subset of flags directed at the matched
// element's parent.
func (f SelectorFlags) ForParent() SelectorFlags {
	return f & parentDirectedFlags
}

// IsEmpty is true for the empty flag set.
func (f SelectorFlags) IsEmpty() bool {
	return f == 0
}

// Contains reports whether all flags in o are set.
func (f SelectorFlags) Contains(o SelectorFlags) bool {
	return f&o == o
}

// Intersection returns the flags common to f and o.
func (f SelectorFlags) Intersection(o SelectorFlags) SelectorFlags {
	return f & o
}

// OpaqueElement is the engine-visible identity token of an element. It
// is derived from the element's node reference, not from a content key.
//
// Tokens stay valid only as long as the backing arena does not grow; see
// the arena documentation for this limitation.
type OpaqueElement struct {
	ref any
}

// NewOpaqueElement wraps a node reference into an identity token.
func NewOpaqueElement(ref any) OpaqueElement {
	return OpaqueElement{ref: ref}
}

// Ref returns the wrapped node reference.
func (o OpaqueElement) Ref() any {
	return o.ref
}
