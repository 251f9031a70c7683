package treeedit

// NewLineKind selects the line ending SourceFile uses when generating new
// text (indentation, inserted statements, ...). It never rewrites line
// endings already present in the original source.
type NewLineKind uint8

const (
	NewLineLF NewLineKind = iota
	NewLineCRLF
)

func (k NewLineKind) String() string {
	if k == NewLineCRLF {
		return "\r\n"
	}
	return "\n"
}

// ManipulationSettings controls how edits generated by internal/treeedit
// format new text they introduce.
type ManipulationSettings struct {
	NewLineKind     NewLineKind
	IndentationText string
}

// DefaultManipulationSettings mirrors ts-morph's own defaults: four spaces,
// LF line endings.
func DefaultManipulationSettings() ManipulationSettings {
	return ManipulationSettings{
		NewLineKind:     NewLineLF,
		IndentationText: "    ",
	}
}
