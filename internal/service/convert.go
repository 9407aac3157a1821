package service

import (
	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/pkg/api"
)

func membersFromAPI(in []api.Member) []models.Member {
	members := make([]models.Member, len(in))
	for i, m := range in {
		members[i] = models.Member{
			ID:      m.ID,
			Name:    m.Name,
			Owes:    m.Owes,
			HasPaid: m.HasPaid,
		}
	}
	return members
}

func billToAPI(bill *models.Bill) *api.Bill {
	members := make([]api.Member, len(bill.Members))
	for i, m := range bill.Members {
		members[i] = api.Member{
			ID:      m.ID,
			Name:    m.Name,
			Owes:    m.Owes,
			HasPaid: m.HasPaid,
		}
	}
	return &api.Bill{
		ID:          bill.ID,
		Title:       bill.Title,
		TotalAmount: bill.TotalAmount,
		Date:        bill.Date,
		Members:     members,
		CreatedAt:   bill.CreatedAt,
	}
}

func billSummaryToAPI(bill *models.Bill) api.BillSummary {
	var paid int32
	for _, m := range bill.Members {
		if m.HasPaid {
			paid++
		}
	}
	return api.BillSummary{
		ID:          bill.ID,
		Title:       bill.Title,
		TotalAmount: bill.TotalAmount,
		Date:        bill.Date,
		MemberCount: int32(len(bill.Members)),
		PaidCount:   paid,
		CreatedAt:   bill.CreatedAt,
	}
}

func settlementsToAPI(in []models.Settlement) []api.Settlement {
	out := make([]api.Settlement, len(in))
	for i, s := range in {
		out[i] = api.Settlement{
			From:    s.From,
			To:      s.To,
			Amount:  s.Amount,
			Display: s.String(),
		}
	}
	return out
}

func summaryToAPI(s models.Summary) *api.Summary {
	return &api.Summary{
		FairShare:   s.FairShare,
		TotalOwed:   s.TotalOwed,
		TotalPaid:   s.TotalPaid,
		Unallocated: s.Unallocated,
		AllSettled:  s.AllSettled,
	}
}
