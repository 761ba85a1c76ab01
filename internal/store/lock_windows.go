//go:build windows

package store

import "os"

// Windows has no POSIX flock; this build falls back to relying on the
// in-process mutex in Store.withFile for single-process callers. Multi-
// process safety on Windows is not provided, consistent with spec §5's
// "not supported" stance on concurrent access absent external locking.
func lockExclusive(f *os.File) error { return nil }
func lockShared(f *os.File) error    { return nil }
func unlockFile(f *os.File) error    { return nil }
