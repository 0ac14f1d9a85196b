package store

import "fmt"

// PersistenceError reports an I/O or document-level failure during save or
// load: the file is missing, unreadable, unwritable, or not valid JSON.
type PersistenceError struct {
	Op   string // "save" or "load"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s inventory at %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CorruptDataError reports a persisted entry that cannot be reconstructed:
// an unknown type tag, a missing required field, a duplicate identifier, or
// a field that fails product validation. A load that hits one is rejected
// as a whole.
type CorruptDataError struct {
	Index int // position of the offending entry in the document
	Err   error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("invalid product data at entry %d: %v", e.Index, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }
