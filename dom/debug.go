package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// DumpTree renders the subtree below h as an indented tree for
// debugging. Whitespace-only text nodes are skipped entirely.
func (h Handle) DumpTree() string {
	tree := tp.New()
	tree.SetValue(h.debugLabel())
	h.dumpChildren(tree)
	return tree.String()
}

func (h Handle) dumpChildren(branch tp.Tree) {
	for _, id := range h.Node.Children {
		ch := h.Get(id)
		if t, ok := ch.Node.Data.(*TextData); ok && strings.TrimSpace(t.Content) == "" {
			continue
		}
		sub := branch.AddBranch(ch.debugLabel())
		ch.dumpChildren(sub)
	}
}

func (h Handle) debugLabel() string {
	switch d := h.Node.Data.(type) {
	case *DocumentData:
		return fmt.Sprintf("#document (%d)", h.Node.ID)
	case *TextData:
		content := strings.TrimSpace(d.Content)
		if len(content) > 10 {
			content = content[:10] + "..."
		}
		return fmt.Sprintf("#text %q (%d)", content, h.Node.ID)
	case *CommentData:
		return fmt.Sprintf("<!-- comment --> (%d)", h.Node.ID)
	case *AnonymousBlockData:
		return fmt.Sprintf("anonymous block (%d)", h.Node.ID)
	case *ElementData:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<%s", d.Name.Local)
		for _, a := range d.Attributes {
			fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
		}
		fmt.Fprintf(&sb, "> (%d)", h.Node.ID)
		return sb.String()
	}
	return fmt.Sprintf("?? (%d)", h.Node.ID)
}
