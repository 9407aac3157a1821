// Package settlement computes who should pay whom to balance a bill.
//
// All functions are pure: they read a member snapshot and return fresh
// values. Nothing is cached, so callers recompute whenever the members change.
package settlement

import (
	"fmt"
	"math"

	"github.com/splitease/splitease/internal/models"
)

// Strategy selects a settlement algorithm.
type Strategy string

const (
	// Pairwise compares every paid member with every unpaid member against a
	// static fair share. It is the compatible default.
	Pairwise Strategy = "pairwise"

	// Minimize matches the same members greedily with running balances.
	Minimize Strategy = "minimize"
)

// Func computes settlements for a member list.
type Func func(members []models.Member) []models.Settlement

// For returns the settlement function for a strategy. An empty strategy
// selects Pairwise.
func For(s Strategy) (Func, error) {
	switch s {
	case "", Pairwise:
		return Compute, nil
	case Minimize:
		return MinimizeTransactions, nil
	default:
		return nil, fmt.Errorf("unknown settlement strategy: %q", s)
	}
}

// FairShare returns the average owed amount, or 0 for no members.
func FairShare(members []models.Member) float64 {
	if len(members) == 0 {
		return 0
	}
	var total float64
	for _, m := range members {
		total += m.Owes
	}
	return total / float64(len(members))
}

// Compute returns the settlements for a member list using the greedy pairwise
// scheme.
//
// Algorithm:
//   - fairShare = sum(owes) / len(members)
//   - for each paid member (outer) and each unpaid member (inner), in input order:
//     if both owe more than fairShare, the unpaid member pays the paid member
//     min(paid.Owes-fairShare, unpaid.Owes-fairShare)
//
// No running balance is kept, so one member's excess can appear in several
// settlements. Comparisons use raw doubles; only emitted amounts are rounded.
func Compute(members []models.Member) []models.Settlement {
	settlements := []models.Settlement{}
	if len(members) == 0 {
		return settlements
	}

	fairShare := FairShare(members)

	var paid, unpaid []models.Member
	for _, m := range members {
		if m.HasPaid {
			paid = append(paid, m)
		} else {
			unpaid = append(unpaid, m)
		}
	}

	for _, p := range paid {
		for _, u := range unpaid {
			if !(p.Owes > fairShare && u.Owes > fairShare) {
				continue
			}
			amount := math.Min(p.Owes-fairShare, u.Owes-fairShare)
			// NaN fails both checks. Sub-cent amounts would render as 0.00.
			if rounded := Round(amount); amount > 0 && rounded > 0 {
				settlements = append(settlements, models.Settlement{
					From:   u.Name,
					To:     p.Name,
					Amount: rounded,
				})
			}
		}
	}

	return settlements
}

// Round rounds an amount to 2 decimal places, half away from zero.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}
