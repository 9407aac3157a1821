package settlement

import (
	"sort"

	"github.com/splitease/splitease/internal/models"
)

// noiseFloor is the smallest balance still worth settling.
const noiseFloor = 0.01

type balance struct {
	name   string
	amount float64
}

// MinimizeTransactions settles the same members Compute considers, but tracks
// running balances so that no excess is spent twice.
//
// Creditors are paid members and debtors are unpaid members whose owed amount
// exceeds the fair share. Each side is ordered by excess, largest first, and
// the largest debtor is matched against the largest creditor.
func MinimizeTransactions(members []models.Member) []models.Settlement {
	settlements := []models.Settlement{}
	if len(members) == 0 {
		return settlements
	}

	fairShare := FairShare(members)

	var creditors, debtors []balance
	for _, m := range members {
		excess := m.Owes - fairShare
		if !(excess > 0) {
			continue
		}
		if m.HasPaid {
			creditors = append(creditors, balance{name: m.Name, amount: excess})
		} else {
			debtors = append(debtors, balance{name: m.Name, amount: excess})
		}
	}

	byAmount := func(b []balance) func(i, j int) bool {
		return func(i, j int) bool { return b[i].amount > b[j].amount }
	}
	sort.SliceStable(creditors, byAmount(creditors))
	sort.SliceStable(debtors, byAmount(debtors))

	// Greedy algorithm: match largest debts with largest credits
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := debtor.amount
		if creditor.amount < amount {
			amount = creditor.amount
		}

		if amount >= noiseFloor {
			settlements = append(settlements, models.Settlement{
				From:   debtor.name,
				To:     creditor.name,
				Amount: Round(amount),
			})
		}

		debtor.amount -= amount
		creditor.amount -= amount

		if debtor.amount < noiseFloor {
			i++
		}
		if creditor.amount < noiseFloor {
			j++
		}
	}

	return settlements
}
