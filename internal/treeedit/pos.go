package treeedit

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/rangetable"

	"surge/internal/source"
)

// blankRunes is the merged Unicode whitespace range table used to classify
// bytes of leading/trailing whitespace beyond plain ASCII space/tab.
var blankRunes = rangetable.Merge(unicode.White_Space)

func isBlankRune(r rune) bool {
	return r != '\n' && r != '\r' && unicode.Is(blankRunes, r)
}

// Range is a half-open byte offset range [Pos, End) into a source file's
// text, independent of any particular parse's arena IDs.
type Range struct {
	Pos int
	End int
}

func (r Range) Len() int { return r.End - r.Pos }

func (r Range) Contains(other Range) bool {
	return r.Pos <= other.Pos && other.End <= r.End
}

// ContainsPos is the half-open point test spec.md's position-lookup
// operations require: pos falls within r iff r.Pos <= pos < r.End, so at an
// exact sibling boundary (one node ending where the next begins) at most one
// of the two ever claims pos. Contains(Range{pos, pos}) is deliberately not
// used for this — it treats both ends as inclusive, so it would answer true
// for both siblings at that boundary.
func (r Range) ContainsPos(pos int) bool {
	return r.Pos <= pos && pos < r.End
}

// FromSpan converts an ast/source.Span (uint32 offsets) to a Range (int offsets).
func FromSpan(sp source.Span) Range {
	return Range{Pos: int(sp.Start), End: int(sp.End)}
}

// insertPointAfterOpenBrace returns the byte offset right after the first
// '{' found within r, or -1 if none is found. Used by the planner to place
// insertions "into" a block-shaped parent the way spec.md's insertIntoParent
// locates a body's opening delimiter.
func insertPointAfterOpenBrace(text []byte, r Range) int {
	for i := r.Pos; i < r.End && i < len(text); i++ {
		if text[i] == '{' {
			return i + 1
		}
	}
	return -1
}

// leadingWhitespaceEnd returns the offset of the first non-whitespace rune
// at or after pos (not counting newlines) — used to skip indentation already
// present before an insertion point. Unicode-aware rather than
// ASCII-space/tab-only, since source text can carry non-breaking spaces or
// other Unicode blanks copied in from elsewhere.
func leadingWhitespaceEnd(text []byte, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRune(text[pos:])
		if !isBlankRune(r) {
			break
		}
		pos += size
	}
	return pos
}

// SkipHorizontalWhitespace returns the offset of the first non-blank rune at
// or after pos in text, without crossing a newline. Exported for
// internal/treeedit/refactor, which needs the same Unicode-aware scan when
// deciding whether a removed node leaves a trailing blank run behind.
func SkipHorizontalWhitespace(text string, pos int) int {
	return leadingWhitespaceEnd([]byte(text), pos)
}

// lineStart walks backward from pos to the start of its line.
func lineStart(text []byte, pos int) int {
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// indentOf returns the whitespace prefix of the line containing pos.
func indentOf(text []byte, pos int) string {
	start := lineStart(text, pos)
	end := leadingWhitespaceEnd(text, start)
	return string(text[start:end])
}

// indentWidth returns indent's rendered terminal column width, expanding
// tabs to 4-column stops.
func indentWidth(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 4 - width%4
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}
