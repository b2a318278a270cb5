package stock

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		current string
		min     string
		want    Status
	}{
		{"zero stock is out regardless of min", "0", "5", OutOfStock},
		{"zero stock with zero min", "0", "0", OutOfStock},
		{"at minimum is low", "5", "5", LowStock},
		{"below minimum is low", "2", "5", LowStock},
		{"fractional below minimum", "0.5", "2.5", LowStock},
		{"just above minimum", "5.01", "5", InStock},
		{"well stocked", "100", "5", InStock},
		{"positive stock with zero min", "1", "0", InStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := decimal.RequireFromString(tc.current)
			min := decimal.RequireFromString(tc.min)
			if got := Classify(current, min); got != tc.want {
				t.Errorf("Classify(%s, %s) = %v, want %v", tc.current, tc.min, got, tc.want)
			}
		})
	}
}

func TestClassifyInt(t *testing.T) {
	if got := ClassifyInt(0, 10); got != OutOfStock {
		t.Errorf("ClassifyInt(0, 10) = %v, want OutOfStock", got)
	}
	if got := ClassifyInt(3, 5); got != LowStock {
		t.Errorf("ClassifyInt(3, 5) = %v, want LowStock", got)
	}
	if got := ClassifyInt(6, 5); got != InStock {
		t.Errorf("ClassifyInt(6, 5) = %v, want InStock", got)
	}
}

func TestStatusString(t *testing.T) {
	if OutOfStock.String() != "out-of-stock" || LowStock.String() != "low-stock" || InStock.String() != "in-stock" {
		t.Error("unexpected status labels")
	}
}
