package models

import (
	"errors"
	"math"
	"testing"
)

func validBill() *Bill {
	return &Bill{
		Title:       "Groceries",
		TotalAmount: 50,
		Members: []Member{
			{ID: "m1", Name: "Alice", Owes: 25, HasPaid: true},
			{ID: "m2", Name: "Bob", Owes: 25},
		},
	}
}

func TestBillValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Bill)
		wantErr error
	}{
		{"valid", func(*Bill) {}, nil},
		{"blank title", func(b *Bill) { b.Title = " " }, ErrEmptyTitle},
		{"zero total", func(b *Bill) { b.TotalAmount = 0 }, ErrInvalidTotal},
		{"NaN total", func(b *Bill) { b.TotalAmount = math.NaN() }, ErrInvalidTotal},
		{"no members", func(b *Bill) { b.Members = nil }, ErrNoMembers},
		{"blank name", func(b *Bill) { b.Members[1].Name = "" }, ErrEmptyName},
		{"negative owes", func(b *Bill) { b.Members[0].Owes = -1 }, ErrInvalidOwes},
		{"infinite owes", func(b *Bill) { b.Members[0].Owes = math.Inf(1) }, ErrInvalidOwes},
		{"owed sum overflows", func(b *Bill) {
			b.Members[0].Owes = math.MaxFloat64
			b.Members[1].Owes = math.MaxFloat64
		}, ErrInvalidOwes},
		{"duplicate member ID", func(b *Bill) { b.Members[1].ID = "m1" }, ErrDuplicateID},
		{"blank member IDs", func(b *Bill) { b.Members[0].ID, b.Members[1].ID = "", "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			tt.mutate(b)
			err := b.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateMembers_AllowsBlankNames(t *testing.T) {
	members := []Member{{Name: "", Owes: 10}, {Name: "", Owes: 0}}
	if err := ValidateMembers(members); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestBillClone(t *testing.T) {
	b := validBill()
	c := b.Clone()

	c.Members[0].Name = "Mallory"
	c.Title = "Changed"
	if b.Members[0].Name != "Alice" || b.Title != "Groceries" {
		t.Error("mutating the clone changed the original")
	}

	var nilBill *Bill
	if nilBill.Clone() != nil {
		t.Error("expected nil clone of nil bill")
	}
}

func TestBillMemberIndex(t *testing.T) {
	b := validBill()
	if got := b.MemberIndex("m2"); got != 1 {
		t.Errorf("MemberIndex(m2) = %d, want 1", got)
	}
	if got := b.MemberIndex("missing"); got != -1 {
		t.Errorf("MemberIndex(missing) = %d, want -1", got)
	}
}

func TestSettlementString(t *testing.T) {
	s := Settlement{From: "Bob", To: "Alice", Amount: 30}
	if got, want := s.String(), "Bob → Alice: 30.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
