package settlement

import (
	"math"
	"reflect"
	"testing"

	"github.com/splitease/splitease/internal/models"
)

func member(name string, owes float64, paid bool) models.Member {
	return models.Member{ID: name, Name: name, Owes: owes, HasPaid: paid}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		members []models.Member
		want    []models.Settlement
	}{
		{
			name: "everyone owes the fair share",
			members: []models.Member{
				member("A", 30, true),
				member("B", 30, true),
				member("C", 30, false),
				member("D", 30, false),
			},
			want: []models.Settlement{},
		},
		{
			name: "no unpaid member above fair share",
			members: []models.Member{
				member("A", 60, true),
				member("B", 20, true),
				member("C", 20, false),
				member("D", 20, false),
			},
			want: []models.Settlement{},
		},
		{
			name: "one qualifying pair",
			members: []models.Member{
				member("A", 60, true),
				member("B", 60, false),
				member("C", 0, true),
				member("D", 0, false),
			},
			want: []models.Settlement{{From: "B", To: "A", Amount: 30}},
		},
		{
			name: "excess is reused across pairs",
			members: []models.Member{
				member("A", 50, true),
				member("B", 40, false),
				member("C", 40, false),
				member("D", 0, true),
				member("E", 0, true),
			},
			// fairShare = 26, A exceeds by 24, B and C by 14 each
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 14},
				{From: "C", To: "A", Amount: 14},
			},
		},
		{
			name: "paid members outer, unpaid inner",
			members: []models.Member{
				member("U1", 45, false),
				member("P1", 40, true),
				member("P2", 50, true),
				member("U2", 35, false),
				member("Z", 0, false),
			},
			// fairShare = 34
			want: []models.Settlement{
				{From: "U1", To: "P1", Amount: 6},
				{From: "U2", To: "P1", Amount: 1},
				{From: "U1", To: "P2", Amount: 11},
				{From: "U2", To: "P2", Amount: 1},
			},
		},
		{
			name: "amounts rounded to cents",
			members: []models.Member{
				member("A", 10, true),
				member("B", 10, false),
				member("C", 0, false),
			},
			// fairShare = 6.666..., excess 3.333...
			want: []models.Settlement{{From: "B", To: "A", Amount: 3.33}},
		},
		{
			name: "member exactly at fair share never participates",
			members: []models.Member{
				member("A", 20, true),
				member("B", 20, false),
			},
			want: []models.Settlement{},
		},
		{
			name: "negative owes propagate arithmetically",
			members: []models.Member{
				member("A", 10, true),
				member("B", 10, false),
				member("C", -20, false),
			},
			// fairShare = 0, both exceed by 10
			want: []models.Settlement{{From: "B", To: "A", Amount: 10}},
		},
		{
			name: "NaN owes is filtered",
			members: []models.Member{
				member("A", math.NaN(), true),
				member("B", 10, false),
			},
			want: []models.Settlement{},
		},
		{
			// Excess 0.004 is positive but renders as 0.00, so it is dropped
			name: "sub-cent excess is dropped",
			members: []models.Member{
				member("A", 0.008, true),
				member("B", 0.008, false),
				member("C", 0, true),
				member("D", 0, false),
			},
			want: []models.Settlement{},
		},
		{
			name: "excess rounding up to a cent is kept",
			members: []models.Member{
				member("A", 0.012, true),
				member("B", 0.012, false),
				member("C", 0, true),
				member("D", 0, false),
			},
			want: []models.Settlement{{From: "B", To: "A", Amount: 0.01}},
		},
		{
			name:    "empty input",
			members: nil,
			want:    []models.Settlement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.members)
			if got == nil {
				t.Fatal("Compute() returned nil, want empty slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute_AllPaidOrNonePaid(t *testing.T) {
	owes := []float64{90, 10, 0, 45.5}
	for _, paid := range []bool{true, false} {
		members := make([]models.Member, len(owes))
		for i, o := range owes {
			members[i] = member(string(rune('A'+i)), o, paid)
		}
		if got := Compute(members); len(got) != 0 {
			t.Errorf("all paid=%v: expected no settlements, got %v", paid, got)
		}
	}
}

func TestCompute_Properties(t *testing.T) {
	inputs := [][]models.Member{
		{member("A", 60, true), member("B", 60, false), member("C", 0, true), member("D", 0, false)},
		{member("A", 12.34, true), member("B", 56.78, false), member("C", 99.99, true), member("D", 0.01, false)},
		{member("A", 0.004, true), member("B", 0.005, false), member("C", 0, false)},
		{member("A", 1e6, true), member("B", 1e6, false), member("C", 1, false)},
	}

	for i, members := range inputs {
		snapshot := make([]models.Member, len(members))
		copy(snapshot, members)

		first := Compute(members)
		second := Compute(members)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("input %d: Compute is not idempotent: %v vs %v", i, first, second)
		}
		if !reflect.DeepEqual(members, snapshot) {
			t.Errorf("input %d: Compute mutated its input", i)
		}
		for _, s := range first {
			if !(s.Amount > 0) {
				t.Errorf("input %d: emitted non-positive amount %v", i, s)
			}
		}
	}
}

func TestFor(t *testing.T) {
	tests := []struct {
		strategy Strategy
		wantErr  bool
	}{
		{"", false},
		{Pairwise, false},
		{Minimize, false},
		{"fastest", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			fn, err := For(tt.strategy)
			if (err != nil) != tt.wantErr {
				t.Fatalf("For(%q) error = %v, wantErr %v", tt.strategy, err, tt.wantErr)
			}
			if !tt.wantErr && fn == nil {
				t.Errorf("For(%q) returned nil func", tt.strategy)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{3.333333, 3.33},
		{12.345678, 12.35},
		{0.004, 0},
		{30, 30},
		{-1.005, -1},
	}
	for _, tt := range tests {
		if got := Round(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
