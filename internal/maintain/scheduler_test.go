package maintain

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"recfile"
)

func TestRunOnceVacuumsEveryTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maint.recfile")
	db, err := recfile.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.CreateTable("wide", []recfile.ColumnDesc{{Name: "s", Type: recfile.TypeString}}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	for i := 0; i < 48; i++ {
		if err := db.Insert("wide", []recfile.Cell{recfile.StringCell("x")}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	sched := NewScheduler(db, Config{DatabasePath: path, Schedule: "0 3 * * *"})
	if err := sched.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	if got := sched.LastVacuumed(); !slices.Contains(got, "wide") {
		t.Fatalf("LastVacuumed() = %v, want it to contain %q", got, "wide")
	}

	stats, err := db.Stats("wide")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RowCount != 48 {
		t.Fatalf("vacuum changed row count: got %d, want 48", stats.RowCount)
	}
}

func TestRunOnceSkipsExcludedTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maint.recfile")
	db, err := recfile.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.CreateTable("wide", []recfile.ColumnDesc{{Name: "s", Type: recfile.TypeString}}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if err := db.CreateTable("other", []recfile.ColumnDesc{{Name: "s", Type: recfile.TypeString}}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	sched := NewScheduler(db, Config{DatabasePath: path, Schedule: "0 3 * * *", Exclude: []string{"wide"}})
	if err := sched.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	got := sched.LastVacuumed()
	if slices.Contains(got, "wide") {
		t.Fatalf("LastVacuumed() = %v, want it to exclude %q", got, "wide")
	}
	if !slices.Contains(got, "other") {
		t.Fatalf("LastVacuumed() = %v, want it to contain %q", got, "other")
	}
}

func TestLoadConfigDefaultsSchedule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maint.yaml")
	writeFile(t, path, "database_path: data.recfile\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Schedule == "" {
		t.Fatal("expected a default schedule to be filled in")
	}
}

func TestLoadConfigRequiresDatabasePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maint.yaml")
	writeFile(t, path, "schedule: \"* * * * *\"\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for a config missing database_path")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
