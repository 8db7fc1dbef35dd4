package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/tbeck/verdin/css"
	"github.com/tbeck/verdin/style"
)

// SynthesizePresentationalHints translates legacy HTML presentation
// attributes into style declarations at the lowest cascade precedence
// and pushes them to the engine-supplied sink.
//
// Recognized attributes are align, width, height and bgcolor; every
// other attribute is ignored. Malformed values are silently dropped —
// no declaration, no error — matching lenient HTML-attribute semantics.
func (h Handle) SynthesizePresentationalHints(sink style.DeclarationSink) {
	e := h.Node.ElementData()
	if e == nil {
		return
	}

	push := func(decl style.Declaration) {
		sink.Push(style.ApplicableDeclaration{
			Declaration: decl,
			Level:       style.LevelPresHints,
		})
	}

	for _, attr := range e.Attributes {
		switch attr.Name {
		case "align":
			var keyword style.TextAlignKeyword
			switch attr.Value {
			case "left":
				keyword = style.TextAlignMozLeft
			case "right":
				keyword = style.TextAlignMozRight
			case "center":
				keyword = style.TextAlignMozCenter
			default:
				continue
			}
			push(style.TextAlignDecl{Keyword: keyword})

		case "width":
			if size, ok := css.ParseLength(attr.Value); ok {
				push(style.WidthDecl{Size: size})
			}

		case "height":
			if size, ok := css.ParseLength(attr.Value); ok {
				push(style.HeightDecl{Size: size})
			}

		case "bgcolor":
			if color, ok := css.ParseHashColor(attr.Value); ok {
				push(style.BackgroundColorDecl{Color: color})
			}
		}
	}
}
