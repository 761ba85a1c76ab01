package recfile_test

import (
	"path/filepath"
	"testing"

	"recfile"
)

func TestEndToEndLifecycle(t *testing.T) {
	db, err := recfile.Open(filepath.Join(t.TempDir(), "shop.recfile"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	err = db.CreateTable("products", []recfile.ColumnDesc{
		{Name: "id", Type: recfile.TypeInt},
		{Name: "price", Type: recfile.TypeFloat},
		{Name: "name", Type: recfile.TypeString},
	})
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	products := []struct {
		id    int32
		price float32
		name  string
	}{
		{1, 9.99, "widget"},
		{2, 19.99, "gadget"},
		{3, 4.50, "gizmo"},
	}
	for _, p := range products {
		err := db.Insert("products", []recfile.Cell{
			recfile.IntCell(p.id),
			recfile.FloatCell(p.price),
			recfile.StringCell(p.name),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	_, rows, err := db.Select("products", []string{"name", "price"}, func(r recfile.Row) bool {
		price, _ := r["price"].Float()
		return price > 5
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	err = db.Update("products", map[string]recfile.Cell{"price": recfile.FloatCell(5.00)},
		func(r recfile.Row) bool {
			name, _ := r["name"].Str()
			return name == "gizmo"
		})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	err = db.Delete("products", func(r recfile.Row) bool {
		name, _ := r["name"].Str()
		return name == "widget"
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, remaining, err := db.Select("products", []string{"*"}, recfile.AlwaysTrue)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("got %d remaining rows, want 2", len(remaining))
	}

	stats, err := db.Stats("products")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RowCount != 2 {
		t.Fatalf("got RowCount=%d, want 2", stats.RowCount)
	}

	if err := db.DropTable("products"); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if _, _, err := db.Select("products", []string{"*"}, recfile.AlwaysTrue); err == nil {
		t.Fatal("expected Select on a dropped table to fail")
	}
}
