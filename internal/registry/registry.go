// Package registry implements the mutable category registry: the ordered
// sets of income fund names and outgoing usage type names.
package registry

import (
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"sadaka/charity-ledger/internal/config"
	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/ledgererror"
	"sadaka/charity-ledger/internal/models"
)

var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Kind selects one of the two category sets.
type Kind string

const (
	// KindIncome selects the income fund names, matched against the
	// Category field of transactions.
	KindIncome Kind = "income"
	// KindOutgoing selects the outgoing usage type names, matched against
	// the SubCategory field of outgoing transactions.
	KindOutgoing Kind = "outgoing"
)

// Registry holds the two ordered category sets and the ledger the rename
// cascade rewrites.
type Registry struct {
	income   []string
	outgoing []string
	ledger   *ledger.Ledger
}

// New creates a registry over the given ledger from persisted category
// configuration.
func New(cfg models.CategoryConfig, l *ledger.Ledger) *Registry {
	return &Registry{
		income:   slices.Clone(cfg.IncomeTypes),
		outgoing: slices.Clone(cfg.OutgoingTypes),
		ledger:   l,
	}
}

// Config returns the registry contents in their persisted form.
func (r *Registry) Config() models.CategoryConfig {
	return models.CategoryConfig{
		IncomeTypes:   slices.Clone(r.income),
		OutgoingTypes: slices.Clone(r.outgoing),
	}
}

// Names returns the ordered names of the given kind.
func (r *Registry) Names(kind Kind) []string {
	return slices.Clone(*r.set(kind))
}

// Contains reports whether a name exists in the given kind's set.
func (r *Registry) Contains(kind Kind, name string) bool {
	return slices.Contains(*r.set(kind), name)
}

// Add appends a new name to the given kind's set.
func (r *Registry) Add(kind Kind, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ledgererror.InvalidRecordError{Field: "name", Reason: "required"}
	}
	set := r.set(kind)
	if slices.Contains(*set, name) {
		return &ledgererror.DuplicateNameError{Kind: r.label(kind), Name: name}
	}
	*set = append(*set, name)
	log.WithFields(logrus.Fields{"kind": kind, "name": name}).Info("Added category")
	return nil
}

// Rename replaces oldName with newName in the given kind's set,
// preserving its position, and rewrites every historical transaction
// carrying the old name. Registry and ledger change together or not at
// all.
func (r *Registry) Rename(kind Kind, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ledgererror.InvalidRecordError{Field: "name", Reason: "required"}
	}
	set := r.set(kind)
	pos := slices.Index(*set, oldName)
	if pos < 0 {
		return &ledgererror.NotFoundError{Kind: r.label(kind), Key: oldName}
	}
	if slices.Contains(*set, newName) {
		return &ledgererror.DuplicateNameError{Kind: r.label(kind), Name: newName}
	}

	(*set)[pos] = newName

	var rewritten int
	if kind == KindIncome {
		rewritten = r.ledger.RenameCategory(oldName, newName)
	} else {
		rewritten = r.ledger.RenameUsageType(oldName, newName)
	}

	log.WithFields(logrus.Fields{
		"kind":      kind,
		"old":       oldName,
		"new":       newName,
		"rewritten": rewritten,
	}).Info("Renamed category")
	return nil
}

// Remove deletes a name from the registry only. Historical transactions
// keep the stale string; aggregation surfaces it as an orphaned bucket so
// old data remains reportable.
func (r *Registry) Remove(kind Kind, name string) error {
	set := r.set(kind)
	pos := slices.Index(*set, name)
	if pos < 0 {
		return &ledgererror.NotFoundError{Kind: r.label(kind), Key: name}
	}
	*set = slices.Delete(*set, pos, pos+1)
	log.WithFields(logrus.Fields{"kind": kind, "name": name}).Info("Removed category")
	return nil
}

func (r *Registry) set(kind Kind) *[]string {
	if kind == KindOutgoing {
		return &r.outgoing
	}
	return &r.income
}

func (r *Registry) label(kind Kind) string {
	if kind == KindOutgoing {
		return "usage type"
	}
	return "category"
}
