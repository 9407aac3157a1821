// Package storage provides abstractions for bill storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/splitease/splitease/internal/models"
)

// ErrNotFound is returned when a bill or member does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for bill storage operations.
// This abstraction allows swapping storage backends (memory, SQLite)
// without changing the service layer. Implementations return copies;
// mutating a returned bill never changes stored state.
type Store interface {
	// CreateBill persists a new bill.
	// The bill.ID, member IDs, CreatedAt and an empty Date are populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills returns all bills in creation order.
	ListBills(ctx context.Context) ([]*models.Bill, error)

	// UpdateBill replaces an existing bill, including its member list.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// DeleteBill removes a bill.
	// Returns an error wrapping ErrNotFound if the bill does not exist.
	DeleteBill(ctx context.Context, billID string) error

	// ToggleMemberPaid atomically flips the paid flag of one member of a bill
	// and returns the new value.
	// Returns an error wrapping ErrNotFound if the bill or member does not exist.
	ToggleMemberPaid(ctx context.Context, billID, memberID string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// Today returns the current UTC date in models.DateLayout, used for bills
// saved without a date.
func Today() string {
	return time.Now().UTC().Format(models.DateLayout)
}

// AssignMemberIDs gives every member without an ID a new UUID.
func AssignMemberIDs(bill *models.Bill) {
	for i := range bill.Members {
		if bill.Members[i].ID == "" {
			bill.Members[i].ID = uuid.New().String()
		}
	}
}
