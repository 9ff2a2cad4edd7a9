// Package ledger implements the transaction store and fund balance
// tracking at the core of the charity ledger.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sadaka/charity-ledger/internal/config"
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

// Order states the record ordering a query caller requires.
type Order int

const (
	// OrderInsertion returns records in the order they entered the ledger,
	// suitable for aggregation consumers.
	OrderInsertion Order = iota
	// OrderDateDesc returns records newest first, suitable for log-style
	// consumers.
	OrderDateDesc
)

// Filter is a conjunction of optional record predicates. Zero values
// match everything.
type Filter struct {
	Year       int
	Type       models.TransactionType
	Category   string
	Group      models.Group
	MemberName string
}

// Matches reports whether a record satisfies every set predicate.
func (f Filter) Matches(t models.Transaction) bool {
	if f.Year != 0 && t.Year != f.Year {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Group != "" && t.Group != f.Group {
		return false
	}
	if f.MemberName != "" && t.NameDetails != f.MemberName {
		return false
	}
	return true
}

// Ledger is the ordered collection of all transaction records. It keeps a
// running per-fund balance so overdraft checks at submission time do not
// rescan the whole history.
type Ledger struct {
	records  []models.Transaction
	ids      map[string]struct{}
	balances map[string]decimal.Decimal
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		ids:      make(map[string]struct{}),
		balances: make(map[string]decimal.Decimal),
	}
}

// Load replaces the ledger contents with previously persisted records,
// rebuilding the running balances. Records with duplicate or missing ids
// are rejected.
func Load(records []models.Transaction) (*Ledger, error) {
	l := New()
	for _, t := range records {
		if err := l.Append(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Count returns the number of records in the ledger.
func (l *Ledger) Count() int {
	return len(l.records)
}

// Balance returns the net balance of a fund: incoming minus outgoing
// amounts tagged to that category.
func (l *Ledger) Balance(category string) decimal.Decimal {
	bal, ok := l.balances[category]
	if !ok {
		return decimal.Zero
	}
	return bal
}

// Balances returns the net balance of every fund the ledger has seen.
func (l *Ledger) Balances() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.balances))
	for cat, bal := range l.balances {
		out[cat] = bal
	}
	return out
}

// Get returns the record with the given id.
func (l *Ledger) Get(id string) (models.Transaction, error) {
	for _, t := range l.records {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, &ledgererror.NotFoundError{Kind: "transaction", Key: id}
}

// Append inserts a fully validated transaction. The record invariants are
// re-checked so a caller bypassing the validation gate cannot corrupt the
// store: positive amount, unique id, and no fund overdraft for outgoing
// records.
func (l *Ledger) Append(t models.Transaction) error {
	if err := l.checkRecord(t, decimal.Zero); err != nil {
		return err
	}
	if t.ID == "" {
		return &ledgererror.InvalidRecordError{Field: "id", Reason: "missing"}
	}
	if _, exists := l.ids[t.ID]; exists {
		return &ledgererror.InvalidRecordError{Field: "id", Value: t.ID, Reason: "already exists"}
	}

	l.records = append(l.records, t)
	l.ids[t.ID] = struct{}{}
	l.apply(t)

	log.WithFields(logrus.Fields{
		"id":       t.ID,
		"type":     t.Type,
		"category": t.Category,
		"amount":   t.Amount.StringFixed(2),
	}).Debug("Appended transaction")
	return nil
}

// Update replaces the record with the given id. The replacement is held
// to the same invariants as an append; a patch that would zero the amount
// or overdraw a fund is rejected and the store is left unchanged. The id
// itself cannot change.
func (l *Ledger) Update(id string, patched models.Transaction) error {
	pos := -1
	for i, t := range l.records {
		if t.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return &ledgererror.NotFoundError{Kind: "transaction", Key: id}
	}
	patched.ID = id

	// The overdraft check must see the fund as it would be with the old
	// record already removed: add back what it drew, or subtract what it
	// contributed.
	old := l.records[pos]
	var adjust decimal.Decimal
	if patched.IsOutgoing() && old.Category == patched.Category {
		if old.IsOutgoing() {
			adjust = old.Amount
		} else {
			adjust = old.Amount.Neg()
		}
	}
	if err := l.checkRecord(patched, adjust); err != nil {
		return err
	}

	l.unapply(old)
	l.records[pos] = patched
	l.apply(patched)

	log.WithField("id", id).Debug("Updated transaction")
	return nil
}

// Remove deletes exactly the record with the given id.
func (l *Ledger) Remove(id string) error {
	for i, t := range l.records {
		if t.ID == id {
			l.unapply(t)
			l.records = append(l.records[:i], l.records[i+1:]...)
			delete(l.ids, id)
			log.WithField("id", id).Debug("Removed transaction")
			return nil
		}
	}
	return &ledgererror.NotFoundError{Kind: "transaction", Key: id}
}

// Query returns the records matching the filter in the requested order.
// The returned slice is a copy; mutating it does not affect the ledger.
func (l *Ledger) Query(f Filter, order Order) []models.Transaction {
	var out []models.Transaction
	for _, t := range l.records {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	if order == OrderDateDesc {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date > out[j].Date
		})
	}
	return out
}

// Transactions returns a copy of every record in insertion order.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// RenameCategory rewrites the fund name on every record carrying the old
// name and moves the running balance with it. Returns the number of
// records rewritten.
func (l *Ledger) RenameCategory(oldName, newName string) int {
	count := 0
	for i := range l.records {
		if l.records[i].Category == oldName {
			l.records[i].Category = newName
			count++
		}
	}
	if bal, ok := l.balances[oldName]; ok {
		merged := bal
		if existing, ok := l.balances[newName]; ok {
			merged = merged.Add(existing)
		}
		l.balances[newName] = merged
		delete(l.balances, oldName)
	}
	return count
}

// RenameUsageType rewrites the usage type on every outgoing record
// carrying the old name. Usage types do not affect fund balances.
func (l *Ledger) RenameUsageType(oldName, newName string) int {
	count := 0
	for i := range l.records {
		if l.records[i].IsOutgoing() && l.records[i].SubCategory == oldName {
			l.records[i].SubCategory = newName
			count++
		}
	}
	return count
}

// checkRecord enforces the record invariants shared by append and update.
// credit is added back to the fund balance before the overdraft check so
// updates can discount the record being replaced.
func (l *Ledger) checkRecord(t models.Transaction, credit decimal.Decimal) error {
	if !t.Amount.IsPositive() {
		return &ledgererror.InvalidRecordError{
			Field:  "amount",
			Value:  t.Amount.String(),
			Reason: "must be positive",
		}
	}
	if t.Type != models.TypeIncoming && t.Type != models.TypeOutgoing {
		return &ledgererror.InvalidRecordError{
			Field:  "type",
			Value:  string(t.Type),
			Reason: "must be Incoming or Outgoing",
		}
	}
	if t.IsOutgoing() {
		available := l.Balance(t.Category).Add(credit)
		if t.Amount.GreaterThan(available) {
			return &ledgererror.InsufficientFundsError{
				Fund:      t.Category,
				Requested: t.Amount.StringFixed(2),
				Available: available.StringFixed(2),
			}
		}
	}
	return nil
}

func (l *Ledger) apply(t models.Transaction) {
	bal := l.Balance(t.Category)
	if t.IsIncoming() {
		l.balances[t.Category] = bal.Add(t.Amount)
	} else {
		l.balances[t.Category] = bal.Sub(t.Amount)
	}
}

func (l *Ledger) unapply(t models.Transaction) {
	bal := l.Balance(t.Category)
	if t.IsIncoming() {
		l.balances[t.Category] = bal.Sub(t.Amount)
	} else {
		l.balances[t.Category] = bal.Add(t.Amount)
	}
}
