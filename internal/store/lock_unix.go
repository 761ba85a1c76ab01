//go:build !windows

package store

import (
	"os"
	"syscall"
)

// lockExclusive takes an exclusive advisory lock on the whole file, per
// spec §5's recommendation that mutating operations hold an exclusive lock
// for their duration.
func lockExclusive(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_EX)
}

// lockShared takes a shared advisory lock, used by read-only operations
// (select).
func lockShared(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_SH)
}

// unlockFile releases whatever advisory lock lockExclusive/lockShared took.
func unlockFile(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
