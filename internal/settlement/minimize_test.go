package settlement

import (
	"reflect"
	"testing"

	"github.com/splitease/splitease/internal/models"
)

func TestMinimizeTransactions(t *testing.T) {
	tests := []struct {
		name    string
		members []models.Member
		want    []models.Settlement
	}{
		{
			name: "matches pairwise on a single pair",
			members: []models.Member{
				member("A", 60, true),
				member("B", 60, false),
				member("C", 0, true),
				member("D", 0, false),
			},
			want: []models.Settlement{{From: "B", To: "A", Amount: 30}},
		},
		{
			name: "running balance stops double spending",
			members: []models.Member{
				member("A", 50, true),
				member("B", 40, false),
				member("C", 40, false),
				member("D", 0, true),
				member("E", 0, true),
			},
			// A is owed 24 in total; B covers 14 and C the remaining 10
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 14},
				{From: "C", To: "A", Amount: 10},
			},
		},
		{
			name: "largest debtor meets largest creditor",
			members: []models.Member{
				member("P1", 40, true),
				member("P2", 50, true),
				member("U1", 45, false),
				member("U2", 35, false),
				member("Z", 0, false),
			},
			// fairShare = 34; credits P2 16, P1 6; debts U1 11, U2 1
			want: []models.Settlement{
				{From: "U1", To: "P2", Amount: 11},
				{From: "U2", To: "P2", Amount: 1},
			},
		},
		{
			name:    "empty input",
			members: nil,
			want:    []models.Settlement{},
		},
		{
			name: "all paid",
			members: []models.Member{
				member("A", 90, true),
				member("B", 10, true),
			},
			want: []models.Settlement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimizeTransactions(tt.members)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MinimizeTransactions() = %v, want %v", got, tt.want)
			}
			if pairwise := Compute(tt.members); len(got) > len(pairwise) {
				t.Errorf("minimized %d transactions, pairwise only %d", len(got), len(pairwise))
			}
		})
	}
}
