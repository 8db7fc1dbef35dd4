package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/tbeck/verdin/style"
)

const elementDoc = `<!DOCTYPE html>
<html>
<body>
  <a id="anchor" class="nav ext" href="/home">home</a>
  <a id="dead">no href</a>
  <input id="box" type="checkbox" checked>
  <input id="plain" type="checkbox">
  <div id="attrs" lang="en-US" data-x="a b c" role="tab"></div>
  <span id="void"></span>
</body>
</html>`

func buildElements(t *testing.T) *Arena {
	t.Helper()
	arena, err := BuildArenaFromString(elementDoc)
	if err != nil {
		t.Fatalf("cannot build arena: %v", err)
	}
	return arena
}

func findByID(t *testing.T, arena *Arena, id string) Handle {
	t.Helper()
	for i := 0; i < arena.Len(); i++ {
		h := arena.Get(i)
		if e := h.Node.ElementData(); e != nil && e.IDAttr == id {
			return h
		}
	}
	t.Fatalf("no element with id=%q in test document", id)
	return Handle{}
}

func TestAttrMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	//
	assert.True(t, div.AttrMatches("lang", style.Exists()))
	assert.False(t, div.AttrMatches("title", style.Exists()),
		"absent attribute must not match, not even for existence")
	assert.False(t, div.AttrMatches("title", style.WithValue(style.AttrEqual, "")),
		"absent attribute must not match an empty-string comparison")
	//
	assert.True(t, div.AttrMatches("lang", style.WithValue(style.AttrDashMatch, "en")))
	assert.True(t, div.AttrMatches("lang", style.WithValue(style.AttrDashMatch, "en-US")))
	assert.False(t, div.AttrMatches("lang", style.WithValue(style.AttrDashMatch, "e")),
		"dash-match is not a plain prefix test")
	//
	assert.True(t, div.AttrMatches("data-x", style.WithValue(style.AttrIncludes, "b")))
	assert.False(t, div.AttrMatches("data-x", style.WithValue(style.AttrIncludes, "a b")),
		"includes compares whole tokens only")
	assert.False(t, div.AttrMatches("role", style.WithValue(style.AttrIncludes, "ta")))
	//
	assert.True(t, div.AttrMatches("role", style.WithValue(style.AttrPrefix, "ta")))
	assert.True(t, div.AttrMatches("role", style.WithValue(style.AttrSuffix, "ab")))
	assert.True(t, div.AttrMatches("role", style.WithValue(style.AttrSubstring, "a")))
	assert.False(t, div.AttrMatches("role", style.WithValue(style.AttrEqual, "Tab")),
		"value comparison stays case-sensitive")
}

func TestHasClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	a := findByID(t, arena, "anchor")
	if !a.HasClass("nav", style.CaseSensitive) {
		t.Error("expected class 'nav' to match, doesn't")
	}
	if !a.HasClass("ext", style.CaseSensitive) {
		t.Error("expected class 'ext' to match, doesn't")
	}
	if a.HasClass("nav ext", style.CaseSensitive) {
		t.Error("expected multi-token string to never match a single class token")
	}
	if a.HasClass("NAV", style.CaseSensitive) {
		t.Error("expected case-sensitive class lookup to reject 'NAV'")
	}
	if !a.HasClass("NAV", style.ASCIICaseInsensitive) {
		t.Error("expected case-insensitive class lookup to accept 'NAV'")
	}
	div := findByID(t, arena, "attrs")
	if div.HasClass("nav", style.CaseSensitive) {
		t.Error("expected element without class attribute to match no class")
	}
}

func TestHasID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	a := findByID(t, arena, "anchor")
	if !a.HasID("anchor", style.CaseSensitive) {
		t.Error("expected id 'anchor' to match, doesn't")
	}
	if a.HasID("Anchor", style.CaseSensitive) {
		t.Error("expected case-sensitive id lookup to reject 'Anchor'")
	}
	if !a.HasID("ANCHOR", style.ASCIICaseInsensitive) {
		t.Error("expected case-insensitive id lookup to accept 'ANCHOR'")
	}
	body := findByTag(t, arena, "body")
	if body.HasID("", style.CaseSensitive) {
		t.Error("expected element without id attribute to match no id")
	}
}

func TestPseudoClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	anchor := findByID(t, arena, "anchor")
	dead := findByID(t, arena, "dead")
	box := findByID(t, arena, "box")
	plain := findByID(t, arena, "plain")
	//
	if !anchor.MatchPseudoClass(style.PseudoAnyLink) {
		t.Error("expected <a href> to match :any-link")
	}
	if !anchor.MatchPseudoClass(style.PseudoLink) {
		t.Error("expected <a href> to match :link")
	}
	if dead.MatchPseudoClass(style.PseudoAnyLink) {
		t.Error("expected <a> without href to not match :any-link")
	}
	if !box.MatchPseudoClass(style.PseudoChecked) {
		t.Error("expected checked checkbox to match :checked")
	}
	if plain.MatchPseudoClass(style.PseudoChecked) {
		t.Error("expected unchecked checkbox to not match :checked")
	}
	if anchor.MatchPseudoClass(style.PseudoVisited) {
		t.Error("expected unmodeled pseudo-class to evaluate to false")
	}
	// Hover and focus come from the element state bits.
	if anchor.MatchPseudoClass(style.PseudoHover) {
		t.Error("expected no hover state initially")
	}
	anchor.Node.State |= style.StateHover | style.StateFocus
	if !anchor.MatchPseudoClass(style.PseudoHover) {
		t.Error("expected hover state to be reflected by :hover")
	}
	if !anchor.MatchPseudoClass(style.PseudoFocus) {
		t.Error("expected focus state to be reflected by :focus")
	}
}

func TestLinkPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	anchor := findByID(t, arena, "anchor")
	dead := findByID(t, arena, "dead")
	if !anchor.IsLink() {
		t.Error("expected <a> to be a link")
	}
	// IsLink intentionally keys on the tag name alone, in contrast to
	// the pseudo-class matches.
	if !dead.IsLink() {
		t.Error("expected <a> without href to still count as link element")
	}
	body := findByTag(t, arena, "body")
	if body.IsLink() {
		t.Error("expected <body> to not be a link")
	}
}

func TestIsEmptyAndIsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	void := findByID(t, arena, "void")
	if !void.IsEmpty() {
		t.Error("expected childless <span> to be empty")
	}
	anchor := findByID(t, arena, "anchor")
	if anchor.IsEmpty() {
		t.Error("expected <a> with text child to not be empty")
	}
	html := findByTag(t, arena, "html")
	if !html.IsRoot() {
		t.Error("expected <html> to be the root element")
	}
	body := findByTag(t, arena, "body")
	if body.IsRoot() {
		t.Error("expected <body> to not be the root element")
	}
}

func TestIsSameTypeAlwaysFalse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	a1 := findByID(t, arena, "anchor")
	a2 := findByID(t, arena, "dead")
	if a1.IsSameType(a2) {
		t.Error("expected type-sameness to always answer false")
	}
	if a1.IsSameType(a1) {
		t.Error("expected type-sameness to always answer false, even reflexively")
	}
}

func TestIsHTMLDocumentBodyElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	body := findByTag(t, arena, "body")
	if !body.IsHTMLDocumentBodyElement() {
		t.Error("expected <body> child of <html> to be recognized")
	}
	div := findByID(t, arena, "attrs")
	if div.IsHTMLDocumentBodyElement() {
		t.Error("expected non-body element to not be recognized")
	}
}

func TestApplySelectorFlagsParentReceivesSelfSubset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	anchor := findByID(t, arena, "anchor")
	body := findByTag(t, arena, "body")
	//
	anchor.ApplySelectorFlags(style.FlagHasEmptySelector | style.FlagHasSlowSelector)
	if !anchor.HasSelectorFlags(style.FlagHasEmptySelector) {
		t.Error("expected self-directed flag on the element itself")
	}
	if anchor.HasSelectorFlags(style.FlagHasSlowSelector) {
		t.Error("expected parent-directed flag to not land on the element itself")
	}
	// The parent write is triggered by the parent-directed subset being
	// non-empty, but the value written is the self-directed subset.
	if !body.HasSelectorFlags(style.FlagHasEmptySelector) {
		t.Error("expected parent to receive the self-directed subset")
	}
	if body.HasSelectorFlags(style.FlagHasSlowSelector) {
		t.Error("expected parent to not receive the parent-directed subset")
	}
}

func TestApplySelectorFlagsParentOnlySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	dead := findByID(t, arena, "dead")
	body := findByTag(t, arena, "body")
	before := body.Node.SelectorFlags()
	//
	dead.ApplySelectorFlags(style.FlagHasEdgeChildSelector)
	if !dead.Node.SelectorFlags().IsEmpty() {
		t.Error("expected purely parent-directed flags to leave the element untouched")
	}
	if body.Node.SelectorFlags() != before {
		t.Error("expected the parent to gain nothing when the self subset is empty")
	}
}

func TestInvalidateSelectorFlagsStartsNewEpoch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	anchor := findByID(t, arena, "anchor")
	anchor.ApplySelectorFlags(style.FlagHasEmptySelector | style.FlagHasSlowSelector)
	if anchor.Node.SelectorFlags().IsEmpty() {
		t.Fatal("expected flags to be recorded before invalidation")
	}
	arena.InvalidateSelectorFlags()
	for id := 0; id < arena.Len(); id++ {
		if !arena.Get(id).Node.SelectorFlags().IsEmpty() {
			t.Errorf("node %d kept selector flags across the invalidation epoch", id)
		}
	}
}

func TestRelativeSelectorSearchDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	if !div.RelativeSelectorSearchDirection().IsEmpty() {
		t.Error("expected no search direction initially")
	}
	div.ApplySelectorFlags(style.FlagRelativeSearchDirectionAncestor | style.FlagAnchorsRelativeSelector)
	got := div.RelativeSelectorSearchDirection()
	if got != style.FlagRelativeSearchDirectionAncestor {
		t.Errorf("expected the ancestor direction to be reported, got %v", got)
	}
}

func TestStyleDataLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	if div.HasData() {
		t.Fatal("expected no style data before Ensure")
	}
	if div.BorrowData(func(*style.ElementData) {}) {
		t.Error("expected Borrow to fail before Ensure")
	}
	if div.MutateData(func(*style.ElementData) {}) {
		t.Error("expected Mutate to fail before Ensure")
	}
	//
	div.EnsureData(func(d *style.ElementData) {
		d.RestyleGeneration = 7
	})
	if !div.HasData() {
		t.Fatal("expected style data after Ensure")
	}
	div.EnsureData(func(d *style.ElementData) {
		if d.RestyleGeneration != 7 {
			t.Errorf("expected Ensure to be idempotent, generation reset to %d", d.RestyleGeneration)
		}
	})
	ok := div.MutateData(func(d *style.ElementData) {
		d.RestyleGeneration++
	})
	if !ok {
		t.Error("expected Mutate to succeed after Ensure")
	}
	ok = div.BorrowData(func(d *style.ElementData) {
		if d.RestyleGeneration != 8 {
			t.Errorf("expected generation 8, have %d", d.RestyleGeneration)
		}
	})
	if !ok {
		t.Error("expected Borrow to succeed after Ensure")
	}
	//
	div.ClearData()
	if div.HasData() {
		t.Error("expected no style data after Clear")
	}
}

func TestSnapshotHandling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	if div.HandledSnapshot() {
		t.Error("expected snapshot to start unhandled")
	}
	div.SetHandledSnapshot()
	div.SetHandledSnapshot() // racing workers may set twice
	if !div.HandledSnapshot() {
		t.Error("expected snapshot to be handled")
	}
}

func TestOpaqueRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	back := Unopaque(div.Opaque())
	if back.NodeID() != div.NodeID() || back.Node != div.Node {
		t.Error("expected opaque token to round-trip to the same handle")
	}
}

func TestEachClassAndAttrName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	a := findByID(t, arena, "anchor")
	var classes []string
	a.EachClass(func(c string) { classes = append(classes, c) })
	assert.Equal(t, []string{"nav", "ext"}, classes)
	var names []string
	a.EachAttrName(func(n string) { names = append(names, n) })
	assert.Contains(t, names, "href")
	assert.Contains(t, names, "class")
}

func TestStableNegatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildElements(t)
	div := findByID(t, arena, "attrs")
	if div.IsMathMLElement() || div.IsSVGElement() || div.IsHTMLSlotElement() {
		t.Error("expected element specializations to be consistently negative")
	}
	if div.MayHaveAnimations() || div.HasAnimations() {
		t.Error("expected animation capabilities to be consistently negative")
	}
	if _, ok := div.ContainingShadowHost(); ok {
		t.Error("expected no shadow host")
	}
	if _, ok := div.LangAttr(); ok {
		t.Error("expected no lang attribute capability")
	}
	if !div.IsHTMLElementInHTMLDocument() {
		t.Error("expected all elements to count as HTML elements in an HTML document")
	}
}
