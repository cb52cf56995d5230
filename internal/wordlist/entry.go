// Package wordlist owns the valid and invalid word sets, their persistence,
// and the reconciliation rules that move words between them.
package wordlist

import "time"

// Status is a word's validation status.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusPending Status = "pending"
)

// Entry is the dictionary metadata stored for a word. Entries are immutable
// once written; only the validation status changes, and only through the
// Reconciler.
type Entry struct {
	Word             string    `json:"word" db:"word" yaml:"word"`
	Source           string    `json:"source" db:"source" yaml:"source"`
	PartOfSpeech     string    `json:"part_of_speech,omitempty" db:"part_of_speech" yaml:"part_of_speech,omitempty"`
	Definition       string    `json:"definition,omitempty" db:"definition" yaml:"definition,omitempty"`
	Pronunciation    string    `json:"pronunciation,omitempty" db:"pronunciation" yaml:"pronunciation,omitempty"`
	Etymology        string    `json:"etymology,omitempty" db:"etymology" yaml:"etymology,omitempty"`
	ValidationStatus Status    `json:"validation_status" db:"validation_status" yaml:"validation_status"`
	AddedDate        time.Time `json:"added_date" db:"added_date" yaml:"added_date"`
}

// Membership locates a word relative to the two sets.
type Membership int

const (
	// MembershipUnknown means the word has never been committed to either set.
	MembershipUnknown Membership = iota
	MembershipValid
	MembershipInvalid
)

func (m Membership) String() string {
	switch m {
	case MembershipValid:
		return "valid"
	case MembershipInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
