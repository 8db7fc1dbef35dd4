package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLNamespace is the namespace of HTML elements.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// BuildArena parses HTML and populates a fresh arena in document order:
// the parse root becomes the document node (slot 0), parent/children get
// wired, element attributes are carried over, the id attribute is cached
// and checkbox state is captured. The arena is complete before any
// matching or traversal begins.
func BuildArena(r io.Reader) (*Arena, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	arena := NewArena()
	root := arena.Root()
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		appendHTMLNode(arena, root.NodeID(), ch)
	}
	tracer().Debugf("built arena with %d nodes", arena.Len())
	return arena, nil
}

// BuildArenaFromString is BuildArena over a string.
func BuildArenaFromString(doc string) (*Arena, error) {
	return BuildArena(strings.NewReader(doc))
}

func appendHTMLNode(arena *Arena, parent int, n *html.Node) {
	var data NodeData
	switch n.Type {
	case html.ElementNode:
		data = elementDataFromHTML(n)
	case html.TextNode:
		data = &TextData{Content: n.Data}
	case html.CommentNode:
		data = &CommentData{}
	default:
		// Doctype and raw nodes carry no styling or geometry.
		return
	}

	id := arena.Append(data)
	arena.nodes[id].Parent = parent
	arena.nodes[parent].Children = append(arena.nodes[parent].Children, id)

	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		appendHTMLNode(arena, id, ch)
	}
}

func elementDataFromHTML(n *html.Node) *ElementData {
	ns := n.Namespace
	if ns == "" {
		ns = HTMLNamespace
	}
	e := &ElementData{
		Name:       TagName{Local: n.Data, Namespace: ns},
		Attributes: make([]Attribute, 0, len(n.Attr)),
	}
	for _, a := range n.Attr {
		e.Attributes = append(e.Attributes, Attribute{Name: a.Key, Value: a.Val})
		switch a.Key {
		case "id":
			e.IDAttr = a.Val
		case "checked":
			e.Checked = true
		}
	}
	return e
}

// MirrorLayoutFromDOM initializes the layout relation as a copy of the
// DOM relation. The layout engine overwrites it when it synthesizes
// anonymous boxes; until then, geometry queries see the plain DOM shape.
func (a *Arena) MirrorLayoutFromDOM() {
	for i := range a.nodes {
		n := &a.nodes[i]
		n.LayoutParent = n.Parent
		n.LayoutChildren = append([]int(nil), n.Children...)
	}
}
