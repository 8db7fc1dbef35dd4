package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "github.com/tbeck/verdin/css"

// CascadeLevel orders declarations by their cascade origin. Lower levels
// lose against higher levels during cascading.
type CascadeLevel uint8

const (
	// LevelPresHints is the lowest level: declarations synthesized from
	// legacy HTML presentation attributes.
	LevelPresHints CascadeLevel = iota
	// LevelUserAgent holds user-agent stylesheet declarations.
	LevelUserAgent
	// LevelUser holds user stylesheet declarations.
	LevelUser
	// LevelAuthor holds author stylesheet declarations.
	LevelAuthor
	// LevelAuthorImportant holds author declarations marked !important.
	LevelAuthorImportant
)

// TextAlignKeyword is a legacy text-alignment keyword, as synthesized
// from the HTML align attribute.
type TextAlignKeyword string

const (
	TextAlignMozLeft   TextAlignKeyword = "-moz-left"
	TextAlignMozRight  TextAlignKeyword = "-moz-right"
	TextAlignMozCenter TextAlignKeyword = "-moz-center"
)

// Declaration is one synthesized style declaration. The variants cover
// exactly the properties the presentational-hint layer produces.
type Declaration interface {
	Key() string // the CSS property name, e.g. "background-color"
	isDeclaration()
}

// TextAlignDecl declares a text-align keyword.
type TextAlignDecl struct {
	Keyword TextAlignKeyword
}

func (TextAlignDecl) Key() string    { return "text-align" }
func (TextAlignDecl) isDeclaration() {}

// WidthDecl declares a non-negative width.
type WidthDecl struct {
	Size css.DimenT
}

func (WidthDecl) Key() string    { return "width" }
func (WidthDecl) isDeclaration() {}

// HeightDecl declares a non-negative height.
type HeightDecl struct {
	Size css.DimenT
}

func (HeightDecl) Key() string    { return "height" }
func (HeightDecl) isDeclaration() {}

// BackgroundColorDecl declares a background color.
type BackgroundColorDecl struct {
	Color css.Color
}

func (BackgroundColorDecl) Key() string    { return "background-color" }
func (BackgroundColorDecl) isDeclaration() {}

// ApplicableDeclaration is a declaration together with its cascade level.
type ApplicableDeclaration struct {
	Declaration Declaration
	Level       CascadeLevel
}

// DeclarationSink collects applicable declarations during matching. The
// cascade engine supplies the concrete collector.
type DeclarationSink interface {
	Push(ApplicableDeclaration)
}

// DeclarationList is a slice-backed DeclarationSink for callers that
// just want the declarations.
type DeclarationList []ApplicableDeclaration

// Push appends a declaration to the list.
func (dl *DeclarationList) Push(decl ApplicableDeclaration) {
	*dl = append(*dl, decl)
}
