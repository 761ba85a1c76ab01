package store

import (
	"errors"
	"testing"
)

func TestLookupTableNotFound(t *testing.T) {
	s := openTemp(t)
	err := s.withFile(false, func() error {
		_, err := s.lookupTable("nope")
		return err
	})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("got %v, want ErrTableNotFound", err)
	}
}

func TestLookupTableDuplicateNamesLowestSlotWins(t *testing.T) {
	s := openTemp(t)
	mustCreateTable(t, s, "dup", []ColumnDesc{{Name: "a", Type: TypeInt}})
	mustCreateTable(t, s, "dup", []ColumnDesc{{Name: "b", Type: TypeFloat}})

	err := s.withFile(false, func() error {
		lr, err := s.lookupTable("dup")
		if err != nil {
			return err
		}
		if lr.slot != 0 {
			t.Fatalf("got slot %d, want 0 (first match)", lr.slot)
		}
		if lr.desc.Columns[0].Name != "a" {
			t.Fatalf("resolved wrong table: columns=%+v", lr.desc.Columns)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withFile: %v", err)
	}
}

func TestRecordSizeForMixedColumns(t *testing.T) {
	cols := []ColumnDesc{
		{Name: "a", Type: TypeInt},
		{Name: "b", Type: TypeFloat},
		{Name: "c", Type: TypeString},
	}
	size, err := recordSizeFor(cols)
	if err != nil {
		t.Fatalf("recordSizeFor: %v", err)
	}
	if size != 4+4+255 {
		t.Fatalf("got %d, want %d", size, 4+4+255)
	}
}

func TestEncodeDecodeTableDescRoundTrip(t *testing.T) {
	desc := tableDesc{
		Name:       "widgets",
		FirstPage:  3,
		LastPage:   7,
		RecordSize: 263,
		Columns: []ColumnDesc{
			{Name: "id", Type: TypeInt},
			{Name: "label", Type: TypeString},
		},
	}
	buf := encodeTableDesc(desc)
	if len(buf) != TableMetaSize {
		t.Fatalf("encoded slot is %d bytes, want %d", len(buf), TableMetaSize)
	}
	got := decodeTableDesc(buf)
	if got.Name != desc.Name || got.FirstPage != desc.FirstPage || got.LastPage != desc.LastPage ||
		got.RecordSize != desc.RecordSize || len(got.Columns) != len(desc.Columns) {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", got, desc)
	}
	for i, c := range desc.Columns {
		if got.Columns[i] != c {
			t.Fatalf("column %d mismatch: got %+v, want %+v", i, got.Columns[i], c)
		}
	}
}
