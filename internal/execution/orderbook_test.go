package execution

import (
	"math"
	"testing"
)

func TestFillPriceSpreadAndImpact(t *testing.T) {
	book := OrderBook{MidPrice: 100, BidSpreadBps: 2, AskSpreadBps: 3, ImpactCoeff: 0.5}

	buy := book.FillPrice(100, 1000, true)
	wantBuy := 100 * (1 + 3.0/10000.0 + 0.5*1000.0/100000.0)
	if math.Abs(buy-wantBuy) > 1e-12 {
		t.Fatalf("buy fill mismatch: got %.10f want %.10f", buy, wantBuy)
	}

	sell := book.FillPrice(100, -1000, false)
	wantSell := 100 * (1 - 2.0/10000.0 - 0.5*1000.0/100000.0)
	if math.Abs(sell-wantSell) > 1e-12 {
		t.Fatalf("sell fill mismatch: got %.10f want %.10f", sell, wantSell)
	}
}

func TestFillPriceSidedness(t *testing.T) {
	book := OrderBook{BidSpreadBps: 1, AskSpreadBps: 1, ImpactCoeff: 0.2}
	ref := 250.0
	if got := book.FillPrice(ref, 10, true); got < ref {
		t.Fatalf("buy fill below reference: %.6f", got)
	}
	if got := book.FillPrice(ref, -10, false); got > ref {
		t.Fatalf("sell fill above reference: %.6f", got)
	}
}

func TestFillPriceWidensWithSize(t *testing.T) {
	book := OrderBook{AskSpreadBps: 1, ImpactCoeff: 0.3}
	small := book.FillPrice(100, 10, true)
	large := book.FillPrice(100, 10000, true)
	if large <= small {
		t.Fatalf("impact should widen with size: small=%.6f large=%.6f", small, large)
	}
}

func TestFillPriceZeroConfigPassThrough(t *testing.T) {
	var book OrderBook
	if got := book.FillPrice(42, 5, true); got != 42 {
		t.Fatalf("expected pass-through fill, got %.6f", got)
	}
}

func TestSideOf(t *testing.T) {
	if SideOf(3) != Buy {
		t.Fatalf("positive qty should be a buy")
	}
	if SideOf(-3) != Sell {
		t.Fatalf("negative qty should be a sell")
	}
}
