// Package store provides whole-file persistence for the ledger, the
// member directory, and the category registry.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"sadaka/charity-ledger/internal/config"
	"sadaka/charity-ledger/internal/fileutils"
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

// LedgerStore manages loading and saving of all application data.
// Transactions live in a CSV file, member profiles in JSON, and category
// configuration in YAML.
//
// Load contract: an absent file is a legitimate empty state and returns
// the default structure with a warning log; an existing file that cannot
// be parsed is a PersistenceError, never silently collapsed to empty.
type LedgerStore struct {
	TransactionsFile string
	MembersFile      string
	CategoriesFile   string
}

// NewLedgerStore creates a store rooted at the given data directory using
// the configured file names.
func NewLedgerStore(cfg *config.Config) *LedgerStore {
	dir := cfg.Data.Directory
	return &LedgerStore{
		TransactionsFile: filepath.Join(dir, cfg.Data.TransactionsFile),
		MembersFile:      filepath.Join(dir, cfg.Data.MembersFile),
		CategoriesFile:   filepath.Join(dir, cfg.Data.CategoriesFile),
	}
}

// LoadTransactions loads the transaction records from CSV.
func (s *LedgerStore) LoadTransactions() ([]models.Transaction, error) {
	if !fileutils.FileExists(s.TransactionsFile) {
		log.WithField("file", s.TransactionsFile).Warn("Transactions file not found, starting empty")
		return []models.Transaction{}, nil
	}

	data, err := os.ReadFile(s.TransactionsFile)
	if err != nil {
		return nil, &ledgererror.PersistenceError{Op: "load", Path: s.TransactionsFile, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Transaction{}, nil
	}

	var records []models.Transaction
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, &ledgererror.PersistenceError{Op: "load", Path: s.TransactionsFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  s.TransactionsFile,
		"count": len(records),
	}).Debug("Loaded transactions")
	return records, nil
}

// SaveTransactions rewrites the whole transaction CSV. Amounts are
// normalized to 2 decimal places on the way out.
func (s *LedgerStore) SaveTransactions(records []models.Transaction) error {
	for i := range records {
		records[i].Amount = records[i].Amount.Round(2)
	}

	data, err := gocsv.MarshalBytes(&records)
	if err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.TransactionsFile, Err: err}
	}
	if err := fileutils.WriteFile(s.TransactionsFile, data, 0644); err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.TransactionsFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  s.TransactionsFile,
		"count": len(records),
	}).Debug("Saved transactions")
	return nil
}

// LoadMembers loads the member profiles from JSON.
func (s *LedgerStore) LoadMembers() (map[string]models.Member, error) {
	if !fileutils.FileExists(s.MembersFile) {
		log.WithField("file", s.MembersFile).Warn("Members file not found, starting empty")
		return map[string]models.Member{}, nil
	}

	data, err := os.ReadFile(s.MembersFile)
	if err != nil {
		return nil, &ledgererror.PersistenceError{Op: "load", Path: s.MembersFile, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]models.Member{}, nil
	}

	var profiles map[string]models.Member
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, &ledgererror.PersistenceError{Op: "load", Path: s.MembersFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  s.MembersFile,
		"count": len(profiles),
	}).Debug("Loaded members")
	return profiles, nil
}

// SaveMembers rewrites the whole members JSON file.
func (s *LedgerStore) SaveMembers(profiles map[string]models.Member) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.MembersFile, Err: err}
	}
	if err := fileutils.WriteFile(s.MembersFile, data, 0644); err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.MembersFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  s.MembersFile,
		"count": len(profiles),
	}).Debug("Saved members")
	return nil
}

// LoadCategoryConfig loads the category registry from YAML. An absent
// file yields the default category sets.
func (s *LedgerStore) LoadCategoryConfig() (models.CategoryConfig, error) {
	if !fileutils.FileExists(s.CategoriesFile) {
		log.WithField("file", s.CategoriesFile).Warn("Categories file not found, using defaults")
		return models.DefaultCategoryConfig(), nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		return models.CategoryConfig{}, &ledgererror.PersistenceError{Op: "load", Path: s.CategoriesFile, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.DefaultCategoryConfig(), nil
	}

	var cfg models.CategoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.CategoryConfig{}, &ledgererror.PersistenceError{Op: "load", Path: s.CategoriesFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":     s.CategoriesFile,
		"income":   len(cfg.IncomeTypes),
		"outgoing": len(cfg.OutgoingTypes),
	}).Debug("Loaded category config")
	return cfg, nil
}

// SaveCategoryConfig rewrites the whole categories YAML file.
func (s *LedgerStore) SaveCategoryConfig(cfg models.CategoryConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.CategoriesFile, Err: err}
	}
	if err := fileutils.WriteFile(s.CategoriesFile, data, 0644); err != nil {
		return &ledgererror.PersistenceError{Op: "save", Path: s.CategoriesFile, Err: err}
	}

	log.WithField("file", s.CategoriesFile).Debug("Saved category config")
	return nil
}
