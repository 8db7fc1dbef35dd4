package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const sampleDoc = `<!DOCTYPE html>
<html>
<head><title>probe</title></head>
<body>
  <p id="intro" class="note first">hello <b>world</b></p>
  <!-- marker -->
  <p lang="en-US">second</p>
  <ul>
    <li>one</li>
    <li>two</li>
    <li>three</li>
  </ul>
</body>
</html>`

func buildSample(t *testing.T) *Arena {
	t.Helper()
	arena, err := BuildArenaFromString(sampleDoc)
	if err != nil {
		t.Fatalf("cannot build arena: %v", err)
	}
	return arena
}

func findByTag(t *testing.T, arena *Arena, tag string) Handle {
	t.Helper()
	for id := 0; id < arena.Len(); id++ {
		h := arena.Get(id)
		if e := h.Node.ElementData(); e != nil && e.Name.Local == tag {
			return h
		}
	}
	t.Fatalf("no <%s> element in sample document", tag)
	return Handle{}
}

func findAllByTag(arena *Arena, tag string) []Handle {
	var hs []Handle
	for id := 0; id < arena.Len(); id++ {
		h := arena.Get(id)
		if e := h.Node.ElementData(); e != nil && e.Name.Local == tag {
			hs = append(hs, h)
		}
	}
	return hs
}

func TestArenaConventions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	if _, ok := arena.Get(0).AsDocument(); !ok {
		t.Error("expected slot 0 to be the document root, isn't")
	}
	if _, ok := arena.Get(1).AsDocument(); !ok {
		t.Error("expected slot 1 to be the owner-document reference point, isn't")
	}
	body := findByTag(t, arena, "body")
	if body.OwnerDoc().NodeID() != 1 {
		t.Errorf("expected owner doc to be node 1, is %d", body.OwnerDoc().NodeID())
	}
}

func TestParentChildAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	for id := 0; id < arena.Len(); id++ {
		h := arena.Get(id)
		for _, chID := range h.Node.Children {
			ch := arena.Get(chID)
			if ch.Node.Parent != id {
				t.Errorf("child %d of node %d has parent %d", chID, id, ch.Node.Parent)
			}
		}
		if h.Node.Parent != NoNode {
			idx, ok := h.ChildIndex()
			if !ok {
				t.Errorf("node %d has a parent but no child index", id)
			}
			siblings := arena.Get(h.Node.Parent).Node.Children
			if siblings[idx] != id {
				t.Errorf("child index of node %d inconsistent", id)
			}
		}
	}
}

func TestChildIndexWithoutParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	if _, ok := arena.Root().ChildIndex(); ok {
		t.Error("expected document root to have no child index, has one")
	}
}

func TestForwardBackward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	items := findAllByTag(arena, "li")
	if len(items) != 3 {
		t.Fatalf("expected 3 <li>, have %d", len(items))
	}
	// Raw sibling positions include the whitespace text nodes between
	// the <li> elements.
	second, ok := items[0].Forward(2)
	if !ok {
		t.Fatal("expected Forward(2) from first <li> to exist, doesn't")
	}
	if second.NodeID() != items[1].NodeID() {
		t.Errorf("expected Forward(2) to reach the second <li>, reached node %d", second.NodeID())
	}
	back, ok := second.Backward(2)
	if !ok || back.NodeID() != items[0].NodeID() {
		t.Error("expected Backward(2) to return to the first <li>, didn't")
	}
	if _, ok := items[0].Backward(5); ok {
		t.Error("expected Backward(5) from first <li> to fail, didn't")
	}
}

func TestSiblingElementsSkipNonElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	paras := findAllByTag(arena, "p")
	if len(paras) != 2 {
		t.Fatalf("expected 2 <p>, have %d", len(paras))
	}
	next, ok := paras[0].NextSiblingElement()
	if !ok {
		t.Fatal("expected a next sibling element after first <p>, none found")
	}
	if next.NodeID() != paras[1].NodeID() {
		t.Errorf("expected next sibling element to skip text and comment, reached node %d", next.NodeID())
	}
	prev, ok := paras[1].PrevSiblingElement()
	if !ok || prev.NodeID() != paras[0].NodeID() {
		t.Error("expected prev sibling element of second <p> to be first <p>, isn't")
	}
}

func TestFirstElementChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	body := findByTag(t, arena, "body")
	first, ok := body.FirstElementChild()
	if !ok {
		t.Fatal("expected body to have an element child, hasn't")
	}
	if !first.HasLocalName("p") {
		t.Errorf("expected first element child of body to be <p>, is <%s>", first.LocalName())
	}
	if fc, _ := body.FirstChild(); fc.NodeID() == first.NodeID() {
		t.Error("expected FirstChild to be a text node, not the <p>")
	}
}

func TestTextContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	paras := findAllByTag(arena, "p")
	if got := paras[0].TextContent(); got != "hello world" {
		t.Errorf("expected text content 'hello world', got %q", got)
	}
}

func TestDumpTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.dom")
	defer teardown()
	//
	arena := buildSample(t)
	dump := arena.Root().DumpTree()
	t.Logf("\n%s", dump)
	if dump == "" {
		t.Error("expected a non-empty tree dump")
	}
}
