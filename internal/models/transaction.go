// Package models defines the core data records of the charity ledger.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes collections from disbursements.
type TransactionType string

const (
	TypeIncoming TransactionType = "Incoming"
	TypeOutgoing TransactionType = "Outgoing"
)

// Group is the cohort tag used to segment members and reporting.
type Group string

const (
	GroupBrother Group = "Brother"
	GroupSister  Group = "Sister"
)

// MonthNames maps month numbers 1-12 to their display names.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Transaction is a single ledger record. For Incoming records NameDetails
// is the contributing member's name; for Outgoing it is the beneficiary.
// Address, Reason, Responsible, SubCategory and MedicalDetail are only
// meaningful for Outgoing records.
type Transaction struct {
	ID            string          `csv:"ID" json:"id"`
	Date          string          `csv:"Date" json:"date"`
	Year          int             `csv:"Year" json:"year"`
	Month         int             `csv:"Month" json:"month"`
	Type          TransactionType `csv:"Type" json:"type"`
	Group         Group           `csv:"Group" json:"group"`
	NameDetails   string          `csv:"Name_Details" json:"name_details"`
	Address       string          `csv:"Address" json:"address,omitempty"`
	Reason        string          `csv:"Reason" json:"reason,omitempty"`
	Responsible   string          `csv:"Responsible" json:"responsible,omitempty"`
	Category      string          `csv:"Category" json:"category"`
	SubCategory   string          `csv:"SubCategory" json:"sub_category,omitempty"`
	MedicalDetail string          `csv:"Medical" json:"medical_detail,omitempty"`
	Amount        decimal.Decimal `csv:"Amount" json:"amount"`
}

// IsIncoming returns true if the record is a collection.
func (t Transaction) IsIncoming() bool {
	return t.Type == TypeIncoming
}

// IsOutgoing returns true if the record is a disbursement.
func (t Transaction) IsOutgoing() bool {
	return t.Type == TypeOutgoing
}

// ParsedDate returns the record's calendar date.
func (t Transaction) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", t.Date)
}

// UsageLabel renders the usage type with its optional medical refinement,
// e.g. "Medical help (Heart)".
func (t Transaction) UsageLabel() string {
	if t.SubCategory == "" {
		return ""
	}
	if t.MedicalDetail != "" {
		return t.SubCategory + " (" + t.MedicalDetail + ")"
	}
	return t.SubCategory
}
