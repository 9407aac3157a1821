package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DateLayout is the calendar date format used for Bill.Date.
const DateLayout = "2006-01-02"

var (
	ErrEmptyTitle   = errors.New("bill title is required")
	ErrInvalidTotal = errors.New("bill total must be a positive amount")
	ErrNoMembers    = errors.New("bill must have at least one member")
	ErrEmptyName    = errors.New("member name is required")
	ErrInvalidOwes  = errors.New("member owed amount must be a non-negative number")
	ErrDuplicateID  = errors.New("member ID is used more than once")
)

// Bill represents a group expense split among its members.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Title is the human-readable name for the bill (e.g., "Pizza Night").
	Title string

	// TotalAmount is the parsed bill total. It is not required to equal the
	// sum of the members' owed amounts.
	TotalAmount float64

	// Date is the calendar date of the bill in DateLayout format.
	Date string

	// Members is the ordered list of participants. Order is significant:
	// settlement output follows it.
	Members []Member

	// CreatedAt is the Unix timestamp when the bill was first stored.
	CreatedAt int64
}

// Member represents one participant of a bill.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// Name is the display name. It may be empty while a bill is being edited.
	Name string

	// Owes is the amount this member is responsible for.
	Owes float64

	// HasPaid reports whether the member has paid their part.
	HasPaid bool
}

// Validate checks the fields required for a saved bill.
func (b *Bill) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if math.IsNaN(b.TotalAmount) || math.IsInf(b.TotalAmount, 0) || b.TotalAmount <= 0 {
		return ErrInvalidTotal
	}
	if len(b.Members) == 0 {
		return ErrNoMembers
	}
	seen := make(map[string]bool, len(b.Members))
	for i, m := range b.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("member %d: %w", i, ErrEmptyName)
		}
		// Blank IDs are assigned by the store
		if m.ID != "" {
			if seen[m.ID] {
				return fmt.Errorf("member %d (%s): %w", i, m.ID, ErrDuplicateID)
			}
			seen[m.ID] = true
		}
	}
	return ValidateMembers(b.Members)
}

// ValidateMembers checks that every owed amount is a finite, non-negative
// number and that their sum is finite.
// Names are not checked so that drafts can be validated.
func ValidateMembers(members []Member) error {
	var sum float64
	for i, m := range members {
		if math.IsNaN(m.Owes) || math.IsInf(m.Owes, 0) || m.Owes < 0 {
			return fmt.Errorf("member %d (%s): %w", i, m.Name, ErrInvalidOwes)
		}
		sum += m.Owes
	}
	if math.IsInf(sum, 0) {
		return fmt.Errorf("sum of owed amounts overflows: %w", ErrInvalidOwes)
	}
	return nil
}

// Clone returns a deep copy of the bill.
func (b *Bill) Clone() *Bill {
	if b == nil {
		return nil
	}
	c := *b
	if b.Members != nil {
		c.Members = make([]Member, len(b.Members))
		copy(c.Members, b.Members)
	}
	return &c
}

// MemberIndex returns the position of the member with the given ID, or -1.
func (b *Bill) MemberIndex(memberID string) int {
	for i, m := range b.Members {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}
