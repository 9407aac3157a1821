package settlement

import (
	"errors"
	"math"
	"testing"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		count  int
		want   float64
		wantOK bool
	}{
		{"four ways", 100, 4, 25, true},
		{"three ways", 90, 3, 30, true},
		{"no members is a no-op", 100, 0, 0, false},
		{"negative count is a no-op", 100, -1, 0, false},
		{"NaN total is a no-op", math.NaN(), 2, 0, false},
		{"infinite total is a no-op", math.Inf(1), 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EqualSplit(tt.total, tt.count)
			if ok != tt.wantOK {
				t.Fatalf("EqualSplit(%v, %d) ok = %v, want %v", tt.total, tt.count, ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("EqualSplit(%v, %d) = %v, want %v", tt.total, tt.count, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"100", 100, true},
		{"12.34", 12.34, true},
		{"12,34", 12.34, true},
		{" 2.50 ", 2.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}
