package store

import (
	"fmt"
	"os"
	"sync"
)

// Store is a handle to one on-disk database file. It holds no open file
// descriptor between calls — per the specification's resource-discipline
// requirement, every public operation opens the file, does its work under
// an exclusive (or shared, for reads) advisory lock, and closes it again on
// every exit path, including error paths.
type Store struct {
	path string
	mu   sync.Mutex // serializes operations within this process

	// file and header are valid only for the duration of a withFile call.
	file   *os.File
	header []byte
}

// Open opens path as a database file, creating and initializing it per the
// file format's §3 layout if it does not already exist. The returned Store
// does not hold the file open; call a DML method to perform work.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.createFile(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return s, nil
}

// createFile writes a brand-new database file: zeroed global header
// (table_count=0, free_head=0), zeroed catalog, and exactly one page whose
// first four bytes are DeadEnd and remainder zero.
func (s *Store) createFile() error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	if info.Size() > 0 {
		// Another process initialized it concurrently; leave it alone.
		return nil
	}

	if err := lockExclusive(f); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer unlockFile(f)

	buf := make([]byte, dataOffset+PageSize)
	// table_count=0, free_head=0 are already the zero value.
	putU32(buf[dataOffset:dataOffset+4], DeadEnd)
	if _, err := f.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("write initial file %s: %w", s.path, err)
	}
	return nil
}

// withFile opens the backing file, takes the appropriate advisory lock,
// loads the global header, runs fn, and — for mutating calls — flushes the
// header back before closing. The file is always closed on return,
// including when fn returns an error.
func (s *Store) withFile(mutate bool, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, openErr := os.OpenFile(s.path, os.O_RDWR, 0644)
	if openErr != nil {
		return fmt.Errorf("open %s: %w", s.path, openErr)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	if mutate {
		if lerr := lockExclusive(f); lerr != nil {
			return fmt.Errorf("lock %s: %w", s.path, lerr)
		}
	} else {
		if lerr := lockShared(f); lerr != nil {
			return fmt.Errorf("lock %s: %w", s.path, lerr)
		}
	}
	defer unlockFile(f)

	s.file = f
	defer func() { s.file = nil; s.header = nil }()

	if err = s.readHeader(); err != nil {
		return err
	}
	if err = fn(); err != nil {
		return err
	}
	if mutate {
		if err = s.writeHeader(); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }
