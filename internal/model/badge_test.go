package model

import (
	"math"
	"testing"
)

func TestResolveBadge(t *testing.T) {
	for _, data := range []struct {
		amount float64
		expect BadgeTier
	}{
		{100, BadgeStandard},
		{199.99, BadgeStandard},
		{200, BadgeBronze},
		{299, BadgeBronze},
		{300, BadgeSilver},
		{499, BadgeSilver},
		{500, BadgeGold},
		{699, BadgeGold},
		{700, BadgeDiamond},
		{999, BadgeDiamond},
		{1000, BadgePlatinum},
		{1000000, BadgePlatinum},
		{50, BadgeStandard},
		{0, BadgeStandard},
		{-1, BadgeStandard},
		{math.NaN(), BadgeStandard},
		{math.Inf(1), BadgePlatinum},
		{math.Inf(-1), BadgeStandard},
	} {
		if tier := ResolveBadge(data.amount); tier != data.expect {
			t.Errorf("ResolveBadge(%v) want %s but got %s", data.amount, data.expect, tier)
		}
	}
}

func TestBadgeTiers(t *testing.T) {
	tiers := BadgeTiers()
	expect := []BadgeTier{BadgeStandard, BadgeBronze, BadgeSilver, BadgeGold, BadgeDiamond, BadgePlatinum}
	if len(tiers) != len(expect) {
		t.Fatalf("want %d tiers but got %d", len(expect), len(tiers))
	}
	for i, tier := range tiers {
		if tier != expect[i] {
			t.Errorf("tiers[%d] want %s but got %s", i, expect[i], tier)
		}
		if tier.Rank() != i {
			t.Errorf("%s rank want %d but got %d", tier, i, tier.Rank())
		}
		if ResolveBadge(tier.Threshold()) != tier {
			t.Errorf("threshold of %s does not resolve to itself", tier)
		}
	}
	if BadgeTier("wood").Valid() || BadgeTier("wood").Rank() != -1 {
		t.Error("unknown tier reported valid")
	}
	if BadgeGold.Name() != "Gold" {
		t.Errorf("want Gold but got %s", BadgeGold.Name())
	}
}
