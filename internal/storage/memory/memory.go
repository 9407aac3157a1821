// Package memory provides an in-memory implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps bills in an arena keyed by ID. The order slice preserves
// creation order for listing.
type Store struct {
	mu    sync.RWMutex
	bills map[string]*models.Bill
	order []string
}

// New creates an empty memory store.
func New() *Store {
	return &Store{bills: make(map[string]*models.Bill)}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// CreateBill stores a copy of the bill, assigning IDs and defaults.
func (s *Store) CreateBill(_ context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	if bill.Date == "" {
		bill.Date = storage.Today()
	}
	storage.AssignMemberIDs(bill)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bills[bill.ID]; exists {
		return fmt.Errorf("bill already exists: %s", bill.ID)
	}
	s.bills[bill.ID] = bill.Clone()
	s.order = append(s.order, bill.ID)
	return nil
}

// GetBill returns a copy of the bill with the given ID.
func (s *Store) GetBill(_ context.Context, billID string) (*models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bill, ok := s.bills[billID]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	return bill.Clone(), nil
}

// ListBills returns copies of all bills in creation order.
func (s *Store) ListBills(_ context.Context) ([]*models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]*models.Bill, 0, len(s.order))
	for _, id := range s.order {
		bills = append(bills, s.bills[id].Clone())
	}
	return bills, nil
}

// UpdateBill replaces a stored bill. CreatedAt is kept from the original.
func (s *Store) UpdateBill(_ context.Context, bill *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bills[bill.ID]
	if !ok {
		return fmt.Errorf("bill %s: %w", bill.ID, storage.ErrNotFound)
	}
	bill.CreatedAt = existing.CreatedAt
	if bill.Date == "" {
		bill.Date = existing.Date
	}
	storage.AssignMemberIDs(bill)
	s.bills[bill.ID] = bill.Clone()
	return nil
}

// DeleteBill removes a bill.
func (s *Store) DeleteBill(_ context.Context, billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bills[billID]; !ok {
		return fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	delete(s.bills, billID)
	for i, id := range s.order {
		if id == billID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ToggleMemberPaid flips the paid flag of a member in place.
func (s *Store) ToggleMemberPaid(_ context.Context, billID, memberID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, ok := s.bills[billID]
	if !ok {
		return false, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	i := bill.MemberIndex(memberID)
	if i < 0 {
		return false, fmt.Errorf("member %s in bill %s: %w", memberID, billID, storage.ErrNotFound)
	}
	bill.Members[i].HasPaid = !bill.Members[i].HasPaid
	return bill.Members[i].HasPaid, nil
}
