// Package validation implements the gate every prospective transaction
// passes before it is committed to the ledger.
package validation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sadaka/charity-ledger/internal/config"
	"sadaka/charity-ledger/internal/dateutils"
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

// Candidate is a prospective transaction as captured from user input,
// before normalization. Amount arrives as the raw string so malformed
// input can be rejected instead of coerced.
type Candidate struct {
	Type          models.TransactionType
	Year          int
	Month         int
	Day           int
	Amount        string
	Group         models.Group
	Name          string
	Category      string
	SubCategory   string
	MedicalDetail string
	Address       string
	Reason        string
	Responsible   string
}

// Gate validates candidates against the current ledger state. It never
// mutates the ledger; committing an accepted record is the caller's step.
type Gate struct {
	ledger *ledger.Ledger
}

// NewGate creates a validation gate over the given ledger.
func NewGate(l *ledger.Ledger) *Gate {
	return &Gate{ledger: l}
}

// Validate checks a candidate and returns the accepted, normalized record
// or a typed rejection. The fund balance check uses the balance before
// the candidate is applied.
func (g *Gate) Validate(c Candidate) (models.Transaction, error) {
	amount, err := models.ParseAmount(c.Amount)
	if err != nil {
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  "amount",
			Value:  c.Amount,
			Reason: "not a valid number",
		}
	}
	if !amount.IsPositive() {
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  "amount",
			Value:  c.Amount,
			Reason: "must be positive",
		}
	}

	if c.Type != models.TypeIncoming && c.Type != models.TypeOutgoing {
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  "type",
			Value:  string(c.Type),
			Reason: "must be Incoming or Outgoing",
		}
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		field := "member name"
		if c.Type == models.TypeOutgoing {
			field = "beneficiary name"
		}
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  field,
			Reason: "required",
		}
	}

	if strings.TrimSpace(c.Category) == "" {
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  "category",
			Reason: "required",
		}
	}

	date, err := dateutils.ComposeISODate(c.Year, c.Month, c.Day)
	if err != nil {
		return models.Transaction{}, &ledgererror.InvalidRecordError{
			Field:  "date",
			Reason: err.Error(),
		}
	}

	if c.Type == models.TypeOutgoing {
		balance := g.ledger.Balance(c.Category)
		if amount.GreaterThan(balance) {
			log.WithFields(logrus.Fields{
				"fund":      c.Category,
				"requested": amount.StringFixed(2),
				"available": balance.StringFixed(2),
			}).Warn("Rejected outgoing transaction, fund would be overdrawn")
			return models.Transaction{}, &ledgererror.InsufficientFundsError{
				Fund:      c.Category,
				Requested: amount.StringFixed(2),
				Available: balance.StringFixed(2),
			}
		}
	}

	t := models.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Year:        c.Year,
		Month:       c.Month,
		Type:        c.Type,
		Group:       c.Group,
		NameDetails: name,
		Category:    c.Category,
		Amount:      amount,
	}
	if c.Type == models.TypeOutgoing {
		t.SubCategory = c.SubCategory
		t.MedicalDetail = c.MedicalDetail
		t.Address = c.Address
		t.Reason = c.Reason
		t.Responsible = c.Responsible
	}
	return t, nil
}
