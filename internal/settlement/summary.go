package settlement

import "github.com/splitease/splitease/internal/models"

// Summarize computes the aggregate figures for a bill's settlement panel.
// settlements is the output of a settlement Func for the same members.
func Summarize(bill *models.Bill, settlements []models.Settlement) models.Summary {
	var owed, paid float64
	for _, m := range bill.Members {
		owed += m.Owes
		if m.HasPaid {
			paid += m.Owes
		}
	}
	return models.Summary{
		FairShare:   Round(FairShare(bill.Members)),
		TotalOwed:   Round(owed),
		TotalPaid:   Round(paid),
		Unallocated: Round(bill.TotalAmount - owed),
		AllSettled:  len(settlements) == 0,
	}
}
