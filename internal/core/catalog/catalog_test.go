package catalog

import "testing"

func TestTraders_OrderedByReturns(t *testing.T) {
	traders := Traders()
	if len(traders) == 0 {
		t.Fatalf("expected a non-empty leaderboard")
	}
	for i := 1; i < len(traders); i++ {
		if traders[i].Returns > traders[i-1].Returns {
			t.Fatalf("leaderboard out of order at %d: %.1f > %.1f", i, traders[i].Returns, traders[i-1].Returns)
		}
	}
	for _, tr := range traders {
		if tr.ID == "" || tr.Name == "" || len(tr.ChartData) == 0 {
			t.Fatalf("incomplete trader entry: %+v", tr)
		}
	}
}

func TestInstruments_SpreadIsConsistent(t *testing.T) {
	for _, in := range Instruments() {
		if in.SellPrice < in.BuyPrice {
			t.Fatalf("%s: sell price below buy price", in.Name)
		}
		if in.Category == "" {
			t.Fatalf("%s: missing category", in.Name)
		}
	}
}

func TestAwardsAndBenefits_Populated(t *testing.T) {
	for _, a := range Awards() {
		if a.Title == "" || a.Issuer == "" {
			t.Fatalf("incomplete award: %+v", a)
		}
	}
	for _, b := range Benefits() {
		if b.Title == "" || b.Description == "" || b.Icon == "" {
			t.Fatalf("incomplete benefit: %+v", b)
		}
	}
}
