// Package storagetest provides a conformance suite for storage.Store implementations.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/internal/storage"
)

// Run exercises a store created by newStore. Every subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("CreateBill generates IDs and defaults", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if bill.Date != storage.Today() {
			t.Errorf("Expected default date %s, got %q", storage.Today(), bill.Date)
		}
		for i, m := range bill.Members {
			if m.ID == "" {
				t.Errorf("Expected member %d ID to be generated", i)
			}
		}
	})

	t.Run("GetBill retrieves complete bill", func(t *testing.T) {
		store := newStore(t)
		original := pizzaNight()
		original.Date = "2024-05-01"
		original.Members[1].HasPaid = true
		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}

		if retrieved.Title != original.Title {
			t.Errorf("Title mismatch: got %s, want %s", retrieved.Title, original.Title)
		}
		if retrieved.TotalAmount != original.TotalAmount {
			t.Errorf("TotalAmount mismatch: got %f, want %f", retrieved.TotalAmount, original.TotalAmount)
		}
		if retrieved.Date != "2024-05-01" {
			t.Errorf("Date mismatch: got %s", retrieved.Date)
		}
		if len(retrieved.Members) != len(original.Members) {
			t.Fatalf("Members count mismatch: got %d, want %d", len(retrieved.Members), len(original.Members))
		}
		for i, m := range retrieved.Members {
			if m != original.Members[i] {
				t.Errorf("Member %d mismatch: got %+v, want %+v", i, m, original.Members[i])
			}
		}
	})

	t.Run("GetBill returns ErrNotFound for nonexistent bill", func(t *testing.T) {
		store := newStore(t)
		_, err := store.GetBill(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("returned bills are copies", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		bill.Members[0].Owes = 999

		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if got.Members[0].Owes == 999 {
			t.Error("Mutating the created bill changed stored state")
		}
		got.Members[0].Name = "Mallory"

		again, _ := store.GetBill(ctx, bill.ID)
		if again.Members[0].Name == "Mallory" {
			t.Error("Mutating a retrieved bill changed stored state")
		}
	})

	t.Run("ListBills keeps creation order", func(t *testing.T) {
		store := newStore(t)
		titles := []string{"First", "Second", "Third"}
		for _, title := range titles {
			bill := pizzaNight()
			bill.Title = title
			if err := store.CreateBill(ctx, bill); err != nil {
				t.Fatalf("CreateBill failed: %v", err)
			}
		}

		bills, err := store.ListBills(ctx)
		if err != nil {
			t.Fatalf("ListBills failed: %v", err)
		}
		if len(bills) != len(titles) {
			t.Fatalf("Expected %d bills, got %d", len(titles), len(bills))
		}
		for i, bill := range bills {
			if bill.Title != titles[i] {
				t.Errorf("Bill %d: got title %s, want %s", i, bill.Title, titles[i])
			}
			if len(bill.Members) != 4 {
				t.Errorf("Bill %d: expected 4 members, got %d", i, len(bill.Members))
			}
		}
	})

	t.Run("ListBills on empty store", func(t *testing.T) {
		store := newStore(t)
		bills, err := store.ListBills(ctx)
		if err != nil {
			t.Fatalf("ListBills failed: %v", err)
		}
		if len(bills) != 0 {
			t.Errorf("Expected no bills, got %d", len(bills))
		}
	})

	t.Run("UpdateBill replaces fields and members", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		createdAt := bill.CreatedAt
		date := bill.Date

		updated := bill.Clone()
		updated.Title = "Sushi Night"
		updated.TotalAmount = 80
		updated.Date = ""
		updated.CreatedAt = 0
		updated.Members = []models.Member{
			bill.Members[2],
			{Name: "Eve", Owes: 40},
		}
		if err := store.UpdateBill(ctx, updated); err != nil {
			t.Fatalf("UpdateBill failed: %v", err)
		}

		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if got.Title != "Sushi Night" || got.TotalAmount != 80 {
			t.Errorf("Fields not updated: %+v", got)
		}
		if got.CreatedAt != createdAt {
			t.Errorf("CreatedAt changed: got %d, want %d", got.CreatedAt, createdAt)
		}
		if got.Date != date {
			t.Errorf("Empty date should keep %s, got %s", date, got.Date)
		}
		if len(got.Members) != 2 {
			t.Fatalf("Expected 2 members, got %d", len(got.Members))
		}
		if got.Members[0].Name != "Carol" || got.Members[1].Name != "Eve" {
			t.Errorf("Unexpected member order: %+v", got.Members)
		}
		if got.Members[1].ID == "" {
			t.Error("Expected new member ID to be generated")
		}
	})

	t.Run("UpdateBill returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		bill.ID = "nonexistent-id"
		if err := store.UpdateBill(ctx, bill); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteBill removes bill", func(t *testing.T) {
		store := newStore(t)
		keep, drop := pizzaNight(), pizzaNight()
		store.CreateBill(ctx, keep)
		store.CreateBill(ctx, drop)

		if err := store.DeleteBill(ctx, drop.ID); err != nil {
			t.Fatalf("DeleteBill failed: %v", err)
		}
		if _, err := store.GetBill(ctx, drop.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		bills, _ := store.ListBills(ctx)
		if len(bills) != 1 || bills[0].ID != keep.ID {
			t.Errorf("Expected only %s to remain, got %v", keep.ID, bills)
		}
		if err := store.DeleteBill(ctx, drop.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("ToggleMemberPaid flips one member", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		store.CreateBill(ctx, bill)

		target := bill.Members[2].ID
		paid, err := store.ToggleMemberPaid(ctx, bill.ID, target)
		if err != nil {
			t.Fatalf("ToggleMemberPaid failed: %v", err)
		}
		if !paid {
			t.Error("Expected ToggleMemberPaid to report paid")
		}

		got, _ := store.GetBill(ctx, bill.ID)
		for i, m := range got.Members {
			want := i == 2
			if m.HasPaid != want {
				t.Errorf("Member %d HasPaid = %v, want %v", i, m.HasPaid, want)
			}
		}

		paid, err = store.ToggleMemberPaid(ctx, bill.ID, target)
		if err != nil {
			t.Fatalf("ToggleMemberPaid failed: %v", err)
		}
		if paid {
			t.Error("Expected ToggleMemberPaid to report unpaid")
		}
		got, _ = store.GetBill(ctx, bill.ID)
		if got.Members[2].HasPaid {
			t.Error("Expected member to be unpaid again")
		}
	})

	t.Run("ToggleMemberPaid concurrent toggles are not lost", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		store.CreateBill(ctx, bill)

		const toggles = 20
		target := bill.Members[1].ID

		var wg sync.WaitGroup
		for range toggles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := store.ToggleMemberPaid(ctx, bill.ID, target); err != nil {
					t.Errorf("ToggleMemberPaid failed: %v", err)
				}
			}()
		}
		wg.Wait()

		// An even number of flips from unpaid ends unpaid
		got, _ := store.GetBill(ctx, bill.ID)
		if got.Members[1].HasPaid {
			t.Errorf("Expected member unpaid after %d toggles, got paid", toggles)
		}
	})

	t.Run("ToggleMemberPaid returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)
		bill := pizzaNight()
		store.CreateBill(ctx, bill)

		if _, err := store.ToggleMemberPaid(ctx, bill.ID, "ghost"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for unknown member, got %v", err)
		}
		if _, err := store.ToggleMemberPaid(ctx, "ghost", bill.Members[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for unknown bill, got %v", err)
		}
	})
}

func pizzaNight() *models.Bill {
	return &models.Bill{
		Title:       "Pizza Night",
		TotalAmount: 120,
		Members: []models.Member{
			{Name: "Alice", Owes: 60},
			{Name: "Bob", Owes: 60},
			{Name: "Carol", Owes: 0},
			{Name: "Dave", Owes: 0},
		},
	}
}
