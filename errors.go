package paramsub

import (
	"fmt"
	"sync"
)

// errSlot is the process-wide mutable diagnostic string described in
// spec.md §4.5/§7 and called out as a deliberately legacy shape in §9:
// callers read and clear it between operations rather than receiving a
// returned error from every substitution step. It is guarded by a mutex
// so a logging goroutine can read it concurrently with the single
// goroutine driving substitution (see spec.md §5).
var (
	errMu  sync.Mutex
	errBuf string
)

// setError overwrites the shared diagnostic slot, discarding whatever
// was there before (spec.md §4.5: "overwritten by the latest error").
func setError(format string, args ...interface{}) {
	errMu.Lock()
	defer errMu.Unlock()
	errBuf = fmt.Sprintf(format, args...)
}

// LastError returns the most recently recorded diagnostic, or "" if
// none is pending.
func LastError() string {
	errMu.Lock()
	defer errMu.Unlock()
	return errBuf
}

// ClearError empties the shared diagnostic slot.
func ClearError() {
	errMu.Lock()
	defer errMu.Unlock()
	errBuf = ""
}

// decorate prefixes a parameter or token name onto an inner error,
// mirroring the teacher's decorate convention (args.go/param.go) of
// naming the offending parameter in every wrapped error.
func decorate(err error, name string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
