package store

import "testing"

func TestCellAccessorsMatchConstructor(t *testing.T) {
	ic := IntCell(42)
	if v, ok := ic.Int(); !ok || v != 42 {
		t.Fatalf("IntCell: got (%d, %v)", v, ok)
	}
	if _, ok := ic.Float(); ok {
		t.Fatal("IntCell.Float() reported ok=true")
	}

	fc := FloatCell(1.25)
	if v, ok := fc.Float(); !ok || v != 1.25 {
		t.Fatalf("FloatCell: got (%v, %v)", v, ok)
	}

	sc := StringCell("hi")
	if v, ok := sc.Str(); !ok || v != "hi" {
		t.Fatalf("StringCell: got (%q, %v)", v, ok)
	}
}

func TestCellAny(t *testing.T) {
	if v := IntCell(3).Any(); v != int32(3) {
		t.Fatalf("got %v (%T), want int32(3)", v, v)
	}
	if v := StringCell("x").Any(); v != "x" {
		t.Fatalf("got %v, want %q", v, "x")
	}
}

func TestAlwaysTrueAcceptsAnyRow(t *testing.T) {
	if !AlwaysTrue(Row{}) {
		t.Fatal("AlwaysTrue(empty row) = false")
	}
	if !AlwaysTrue(Row{"x": IntCell(1)}) {
		t.Fatal("AlwaysTrue(non-empty row) = false")
	}
}
