package store

import (
	"path/filepath"
	"testing"
)

func TestAllocateAndReleasePageCycle(t *testing.T) {
	s := openTemp(t)
	err := s.withFile(true, func() error {
		p1, err := s.allocatePage()
		if err != nil {
			return err
		}
		p2, err := s.allocatePage()
		if err != nil {
			return err
		}
		if p1 == p2 {
			t.Fatalf("allocatePage returned the same page twice: %d", p1)
		}
		if err := s.releasePage(p1); err != nil {
			return err
		}
		if err := s.releasePage(p2); err != nil {
			return err
		}
		// p2 was released last, so it must be the new free-list head.
		if got := s.freeHead(); got != p2 {
			t.Fatalf("freeHead() = %d, want %d", got, p2)
		}
		reused, err := s.allocatePage()
		if err != nil {
			return err
		}
		if reused != p2 {
			t.Fatalf("allocatePage() = %d, want reuse of most recently released page %d", reused, p2)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withFile: %v", err)
	}
}

func TestFreeHeadDeadEndSentinel(t *testing.T) {
	s := openTemp(t)
	err := s.withFile(true, func() error {
		if err := s.setFreeHead(DeadEnd); err != nil {
			return err
		}
		if got := s.freeHead(); got != DeadEnd {
			t.Fatalf("freeHead() = %d, want DeadEnd", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withFile: %v", err)
	}
}

func TestSetFreeHeadRejectsOutOfRange(t *testing.T) {
	s := openTemp(t)
	err := s.withFile(true, func() error {
		return s.setFreeHead(0x10000)
	})
	if err == nil {
		t.Fatal("expected an error for a free-list index exceeding 16 bits")
	}
}

func TestReopenExistingFileIsNotReinitialized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "race.recfile")
	if _, err := Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	// A second Open against an already-initialized file must not re-zero it.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open (second): %v", err)
	}
	if err := s2.CreateTable("t", []ColumnDesc{{Name: "x", Type: TypeInt}}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
}
