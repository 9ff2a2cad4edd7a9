// Package members implements the name-keyed member directory.
package members

import (
	"sort"
	"strings"

	"github.com/google/uuid"
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

// Directory maps member full names to their profiles. Transactions link
// to members by matching name string only; directory changes never touch
// historical transaction records.
type Directory struct {
	profiles map[string]models.Member
}

// New creates a directory from persisted profiles. A nil map is a
// legitimate empty directory.
func New(profiles map[string]models.Member) *Directory {
	if profiles == nil {
		profiles = make(map[string]models.Member)
	}
	return &Directory{profiles: profiles}
}

// Profiles returns the directory contents in their persisted form.
func (d *Directory) Profiles() map[string]models.Member {
	out := make(map[string]models.Member, len(d.profiles))
	for name, p := range d.profiles {
		out[name] = p
	}
	return out
}

// Get returns the profile registered under a name.
func (d *Directory) Get(name string) (models.Member, error) {
	p, ok := d.profiles[name]
	if !ok {
		return models.Member{}, &ledgererror.NotFoundError{Kind: "member", Key: name}
	}
	return p, nil
}

// Upsert inserts or fully replaces the profile at the given name. A
// missing member id is generated.
func (d *Directory) Upsert(name string, profile models.Member) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ledgererror.InvalidRecordError{Field: "name", Reason: "required"}
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()[:8]
	}
	d.profiles[name] = profile
	log.WithFields(logrus.Fields{"name": name, "id": profile.ID}).Info("Saved member")
	return nil
}

// Rename moves a profile to a new name, preserving all attributes.
// Historical transaction name strings are deliberately left unchanged:
// member identity is a by-name convenience, not a durable foreign key.
func (d *Directory) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ledgererror.InvalidRecordError{Field: "name", Reason: "required"}
	}
	p, ok := d.profiles[oldName]
	if !ok {
		return &ledgererror.NotFoundError{Kind: "member", Key: oldName}
	}
	if _, exists := d.profiles[newName]; exists {
		return &ledgererror.DuplicateNameError{Kind: "member", Name: newName}
	}
	delete(d.profiles, oldName)
	d.profiles[newName] = p
	log.WithFields(logrus.Fields{"old": oldName, "new": newName}).Info("Renamed member")
	return nil
}

// Remove deletes a profile. Historical transactions are unaffected.
func (d *Directory) Remove(name string) error {
	if _, ok := d.profiles[name]; !ok {
		return &ledgererror.NotFoundError{Kind: "member", Key: name}
	}
	delete(d.profiles, name)
	log.WithField("name", name).Info("Removed member")
	return nil
}

// Names returns the sorted member names, optionally restricted to one
// group.
func (d *Directory) Names(group models.Group) []string {
	var names []string
	for name, p := range d.profiles {
		if group != "" && p.Group != group {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered members.
func (d *Directory) Count() int {
	return len(d.profiles)
}
