// Package ledgererror defines the typed errors surfaced by the ledger engine.
package ledgererror

import "fmt"

// InvalidRecordError reports a candidate transaction that failed validation
// before it could be committed.
type InvalidRecordError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid record: %s='%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Reason)
}

// InsufficientFundsError reports an outgoing transaction that exceeds the
// current balance of its fund.
type InsufficientFundsError struct {
	Fund      string
	Requested string
	Available string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in %s: requested %s, available %s",
		e.Fund, e.Requested, e.Available)
}

// NotFoundError reports an operation that referenced an unknown transaction
// id, member name, or category.
type NotFoundError struct {
	Kind string // "transaction", "member", "category"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// DuplicateNameError reports an add or rename that collides with an
// existing registry or directory entry.
type DuplicateNameError struct {
	Kind string // "category", "usage type", "member"
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Name)
}

// PersistenceError reports a load or save failure against the backing
// store. A load failure on an existing file is distinct from an absent
// file, which is a legitimate empty state and not an error.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
