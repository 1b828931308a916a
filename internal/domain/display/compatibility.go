package display

import "github.com/yanqian/astropredict-web/internal/domain/prediction"

// Tier is the qualitative band of a compatibility score.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TierFor bands a score: >=80 high, >=60 medium, otherwise low.
func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 60:
		return TierMedium
	default:
		return TierLow
	}
}

// Color is the bar colour of the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "#10b981"
	case TierMedium:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

const (
	msgCompatible   = "These signs have great potential together!"
	msgIncompatible = "These signs can work well with understanding and effort."
)

// CompatibilityView is the compatibility panel.
type CompatibilityView struct {
	Sign1       string `json:"sign1"`
	Sign2       string `json:"sign2"`
	Score       int    `json:"score"`
	BarWidth    int    `json:"barWidth"`
	Tier        Tier   `json:"tier"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Compatible  bool   `json:"compatible"`
	Message     string `json:"message"`
}

// BuildCompatibilityView maps a compatibility result to its panel.
func BuildCompatibilityView(c prediction.Compatibility) CompatibilityView {
	tier := TierFor(c.Score)
	msg := msgIncompatible
	if c.Compatible {
		msg = msgCompatible
	}
	return CompatibilityView{
		Sign1:       c.Sign1,
		Sign2:       c.Sign2,
		Score:       c.Score,
		BarWidth:    clampPercent(c.Score),
		Tier:        tier,
		Color:       tier.Color(),
		Description: c.Description,
		Compatible:  c.Compatible,
		Message:     msg,
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
