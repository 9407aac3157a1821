package settlement

import (
	"testing"

	"github.com/splitease/splitease/internal/models"
)

func TestSummarize(t *testing.T) {
	bill := &models.Bill{
		TotalAmount: 150,
		Members: []models.Member{
			member("A", 60, true),
			member("B", 60, false),
			member("C", 0, true),
			member("D", 0, false),
		},
	}

	got := Summarize(bill, Compute(bill.Members))
	want := models.Summary{
		FairShare:   30,
		TotalOwed:   120,
		TotalPaid:   60,
		Unallocated: 30,
		AllSettled:  false,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarize_EmptyBill(t *testing.T) {
	got := Summarize(&models.Bill{TotalAmount: 10}, Compute(nil))
	if got.FairShare != 0 || got.TotalOwed != 0 || !got.AllSettled {
		t.Errorf("unexpected summary for empty bill: %+v", got)
	}
	if got.Unallocated != 10 {
		t.Errorf("Unallocated = %v, want 10", got.Unallocated)
	}
}
