package treeedit

import (
	"testing"

	"surge/internal/treeedit/adapt"
)

func TestGetIndentationTextAndFirstNodeOnLine(t *testing.T) {
	src := "fn foo() {\n    let x = 1\n\tlet y = 2\n}\n"
	sf, err := Parse("f.sg", []byte(src), DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var lets []*Node
	for _, n := range sf.GetRootNode().GetDescendants() {
		if n.IsKind(adapt.KindStmtLet) {
			lets = append(lets, n)
		}
	}
	if len(lets) != 2 {
		t.Fatalf("expected 2 let statements, got %d", len(lets))
	}

	if got := lets[0].GetIndentationText(); got != "    " {
		t.Fatalf("x indentation = %q, want 4 spaces", got)
	}
	if got := lets[0].GetIndentationWidth(); got != 4 {
		t.Fatalf("x indentation width = %d, want 4", got)
	}
	if got := lets[1].GetIndentationText(); got != "\t" {
		t.Fatalf("y indentation = %q, want a tab", got)
	}
	if got := lets[1].GetIndentationWidth(); got != 4 {
		t.Fatalf("y indentation width = %d, want 4 (tab expands to next stop)", got)
	}
	if !lets[0].IsFirstNodeOnLine() {
		t.Fatalf("x's let should be the first token on its line")
	}
}

func TestIndentWidthExpandsTabsToFourColumnStops(t *testing.T) {
	cases := []struct {
		indent string
		want   int
	}{
		{"", 0},
		{"  ", 2},
		{"\t", 4},
		{"  \t", 4},
		{"\t\t", 8},
		{"   \t", 4},
	}
	for _, c := range cases {
		if got := indentWidth(c.indent); got != c.want {
			t.Errorf("indentWidth(%q) = %d, want %d", c.indent, got, c.want)
		}
	}
}
