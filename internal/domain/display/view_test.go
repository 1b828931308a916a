package display

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
)

func TestBuildResultViewPopulatesEveryRegion(t *testing.T) {
	view := BuildResultView(sampleResult(), zodiac.LookupCharacteristics, zodiac.DefaultSign)

	require.Equal(t, BirthChartView{
		Name:           "Ada",
		BirthDate:      "1990-01-01",
		Gender:         "female",
		SunSign:        "Capricorn",
		SunSymbol:      "♑",
		Element:        "Earth",
		LifePathNumber: 2,
	}, view.BirthChart)

	require.Equal(t, "Capricorn", view.Characteristics.Sign)
	require.False(t, view.Characteristics.Fallback)
	require.Equal(t, []string{"Ambitious", "Disciplined", "Responsible", "Self-controlled"}, view.Characteristics.Traits)
	require.Equal(t, "Taurus, Virgo, Scorpio, Pisces", view.Characteristics.CompatibleText())

	require.Equal(t, PhaseView{Phase: "Adult", Age: 34}, view.CurrentPhase)
	require.Equal(t, []string{"first highlight", "second highlight"}, view.Past.Highlights)
	require.Equal(t, "Balance ambition.", view.Present.Focus)
	require.Equal(t, []string{"Set goals", "Keep learning"}, view.Future.Recommendations)
	require.Equal(t, "Growth ahead.", view.Future.NumerologyInsight)

	require.Len(t, view.Advice, 6)
	keys := make([]string, 0, len(view.Advice))
	for _, item := range view.Advice {
		keys = append(keys, item.Key)
		require.NotEmpty(t, item.Text)
	}
	require.Equal(t, []string{"career", "relationships", "health", "finances", "spiritual", "general"}, keys)
}

func TestBuildResultViewUnknownSignUsesExplicitFallback(t *testing.T) {
	res := sampleResult()
	res.BirthChart.SunSign.Name = "Ophiuchus"

	view := BuildResultView(res, zodiac.LookupCharacteristics, zodiac.DefaultSign)

	require.True(t, view.Characteristics.Fallback)
	require.Equal(t, "Aries", view.Characteristics.Sign)
	require.Equal(t, "Ophiuchus", view.BirthChart.SunSign)
	require.Equal(t, []string{"Leo", "Sagittarius", "Gemini", "Aquarius"}, view.Characteristics.Compatible)
}

func TestBuildResultViewDoesNotAliasInput(t *testing.T) {
	res := sampleResult()
	view := BuildResultView(res, zodiac.LookupCharacteristics, zodiac.DefaultSign)
	view.Past.Highlights[0] = "changed"
	require.Equal(t, "first highlight", res.Predictions.Past.Highlights[0])
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{score: 85, want: TierHigh},
		{score: 80, want: TierHigh},
		{score: 79, want: TierMedium},
		{score: 65, want: TierMedium},
		{score: 60, want: TierMedium},
		{score: 59, want: TierLow},
		{score: 40, want: TierLow},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, TierFor(tt.score), "score %d", tt.score)
	}
}

func TestBuildCompatibilityView(t *testing.T) {
	view := BuildCompatibilityView(prediction.Compatibility{
		Sign1:       "Leo",
		Sign2:       "Aries",
		Score:       90,
		Compatible:  true,
		Description: "Leo and Aries have a strong connection.",
	})
	require.Equal(t, TierHigh, view.Tier)
	require.Equal(t, "#10b981", view.Color)
	require.Equal(t, 90, view.BarWidth)
	require.Equal(t, "These signs have great potential together!", view.Message)

	low := BuildCompatibilityView(prediction.Compatibility{Score: 140})
	require.Equal(t, 100, low.BarWidth)
	require.Equal(t, "These signs can work well with understanding and effort.", low.Message)
}

func sampleResult() prediction.Result {
	return prediction.Result{
		BirthChart: prediction.BirthChart{
			Name:           "Ada",
			BirthDate:      "1990-01-01",
			Gender:         "female",
			Location:       prediction.Location{Latitude: 40.7, Longitude: -74.0},
			SunSign:        prediction.SunSign{Name: "Capricorn", Symbol: "♑"},
			Element:        "Earth",
			LifePathNumber: 2,
		},
		Predictions: prediction.Predictions{
			CurrentAge:       34,
			CurrentLifePhase: "Adult",
			Past: prediction.Past{
				Summary:    "You have lived 34 years.",
				Highlights: []string{"first highlight", "second highlight"},
				Lessons:    []string{"a lesson"},
			},
			Present: prediction.Present{
				CurrentFocus:  "Balance ambition.",
				Opportunities: []string{"growth"},
				Challenges:    []string{"stress"},
			},
			Future: prediction.Future{
				Timeframe:         "Next 10 years (age 34 to 44)",
				PotentialOutcomes: []string{"goals"},
				Recommendations:   []string{"Set goals", "Keep learning"},
				NumerologyInsight: "Growth ahead.",
			},
		},
		Advice: prediction.Advice{
			Career:        "c",
			Relationships: "r",
			Health:        "h",
			Finances:      "f",
			Spiritual:     "s",
			General:       "g",
		},
	}
}
