package main

import (
	"testing"

	"surge/internal/treeedit"
)

func TestSha256HexIsStableAndSensitive(t *testing.T) {
	a := sha256Hex("fn foo() {}\n")
	b := sha256Hex("fn foo() {}\n")
	c := sha256Hex("fn bar() {}\n")
	if a != b {
		t.Fatalf("expected the same text to hash the same twice: %q vs %q", a, b)
	}
	if a == c {
		t.Fatalf("expected different text to hash differently")
	}
}

func TestCompareSnapshotAcceptsItsOwnFreshSnapshot(t *testing.T) {
	dir := t.TempDir()
	cache := treeedit.NewSnapshotCache(dir)

	sf, err := treeedit.Parse("clean.sg", []byte("fn foo() {\n    let x = 1;\n}\n"), treeedit.DefaultManipulationSettings())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cache.Save(sf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := compareSnapshot(sf, cache); err != nil {
		t.Fatalf("compareSnapshot against its own freshly saved snapshot: %v", err)
	}
}
