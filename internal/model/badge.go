package model

import "math"

type BadgeTier string

const (
	BadgeStandard BadgeTier = "standard"
	BadgeBronze   BadgeTier = "bronze"
	BadgeSilver   BadgeTier = "silver"
	BadgeGold     BadgeTier = "gold"
	BadgeDiamond  BadgeTier = "diamond"
	BadgePlatinum BadgeTier = "platinum"
)

// MinVerifyDonation is the smallest donation that verifies a user. The
// resolver itself has no minimum.
const MinVerifyDonation = 100

type badgeInfo struct {
	tier      BadgeTier
	name      string
	threshold float64
}

// highest threshold first
var badges = []badgeInfo{
	{BadgePlatinum, "Platinum", 1000},
	{BadgeDiamond, "Diamond", 700},
	{BadgeGold, "Gold", 500},
	{BadgeSilver, "Silver", 300},
	{BadgeBronze, "Bronze", 200},
	{BadgeStandard, "Standard", 100},
}

// ResolveBadge maps any amount to a tier. Amounts under every threshold,
// negatives and NaN all resolve to standard.
func ResolveBadge(amount float64) BadgeTier {
	if math.IsNaN(amount) {
		return BadgeStandard
	}
	for _, b := range badges {
		if amount >= b.threshold {
			return b.tier
		}
	}
	return BadgeStandard
}

// BadgeTiers lists the tiers in ascending threshold order.
func BadgeTiers() []BadgeTier {
	tiers := make([]BadgeTier, 0, len(badges))
	for i := len(badges) - 1; i >= 0; i-- {
		tiers = append(tiers, badges[i].tier)
	}
	return tiers
}

func (t BadgeTier) info() (badgeInfo, bool) {
	for _, b := range badges {
		if b.tier == t {
			return b, true
		}
	}
	return badgeInfo{}, false
}

func (t BadgeTier) Valid() bool {
	_, ok := t.info()
	return ok
}

func (t BadgeTier) Name() string {
	if b, ok := t.info(); ok {
		return b.name
	}
	return ""
}

func (t BadgeTier) Threshold() float64 {
	b, _ := t.info()
	return b.threshold
}

// Rank is 0 for standard up to 5 for platinum, -1 for an unknown tier.
func (t BadgeTier) Rank() int {
	for i, b := range badges {
		if b.tier == t {
			return len(badges) - 1 - i
		}
	}
	return -1
}

type Verification struct {
	UserID    string    `json:"user_id"`
	Verified  bool      `json:"verified"`
	BadgeTier BadgeTier `json:"badge_tier,omitempty"`
}

type BadgeFormatted struct {
	Tier      BadgeTier `json:"tier"`
	Name      string    `json:"name"`
	Threshold float64   `json:"threshold"`
}

func (t BadgeTier) Format() *BadgeFormatted {
	return &BadgeFormatted{
		Tier:      t,
		Name:      t.Name(),
		Threshold: t.Threshold(),
	}
}
