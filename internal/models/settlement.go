package models

import "fmt"

// Settlement is a directed payment instruction that reduces a bill's imbalance.
// It is derived from the member list on demand and never stored.
type Settlement struct {
	// From is the name of the unpaid member who should pay.
	From string

	// To is the name of the paid member who receives the payment.
	To string

	// Amount is the payment amount, rounded to 2 decimal places.
	Amount float64
}

// String renders the settlement as a human-readable line.
func (s Settlement) String() string {
	return fmt.Sprintf("%s → %s: %.2f", s.From, s.To, s.Amount)
}

// Summary holds the aggregate figures a settlement panel displays.
type Summary struct {
	// FairShare is the average owed amount per member.
	FairShare float64

	// TotalOwed is the sum of all members' owed amounts.
	TotalOwed float64

	// TotalPaid is the sum of owed amounts of members who have paid.
	TotalPaid float64

	// Unallocated is TotalAmount minus TotalOwed.
	Unallocated float64

	// AllSettled is true when no settlement is needed.
	AllSettled bool
}
