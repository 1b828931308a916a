// Package display computes the view models painted into the page regions.
// Everything here is pure; painting happens in the HTTP templates.
package display

import (
	"strings"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
)

// CharacteristicsLookup resolves a sign profile; false means unknown sign.
type CharacteristicsLookup func(name string) (zodiac.Characteristics, bool)

// ResultView holds one entry per results region.
type ResultView struct {
	BirthChart      BirthChartView      `json:"birthChart"`
	Characteristics CharacteristicsView `json:"characteristics"`
	CurrentPhase    PhaseView           `json:"currentPhase"`
	Past            PastView            `json:"past"`
	Present         PresentView         `json:"present"`
	Future          FutureView          `json:"future"`
	Advice          []AdviceItem        `json:"advice"`
}

type BirthChartView struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birthDate"`
	Gender         string `json:"gender"`
	SunSign        string `json:"sunSign"`
	SunSymbol      string `json:"sunSymbol"`
	Element        string `json:"element"`
	LifePathNumber int    `json:"lifePathNumber"`
}

type CharacteristicsView struct {
	Sign       string   `json:"sign"`
	Traits     []string `json:"traits"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Compatible []string `json:"compatible"`
	// Fallback is set when the sun sign was unknown and the default profile was used.
	Fallback bool `json:"fallback"`
}

// CompatibleText joins the compatible signs the way the panel shows them.
func (c CharacteristicsView) CompatibleText() string {
	return strings.Join(c.Compatible, ", ")
}

type PhaseView struct {
	Phase string `json:"phase"`
	Age   int    `json:"age"`
}

type PastView struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Lessons    []string `json:"lessons"`
}

type PresentView struct {
	Focus         string   `json:"focus"`
	Opportunities []string `json:"opportunities"`
	Challenges    []string `json:"challenges"`
}

type FutureView struct {
	Timeframe         string   `json:"timeframe"`
	Outcomes          []string `json:"outcomes"`
	Recommendations   []string `json:"recommendations"`
	NumerologyInsight string   `json:"numerologyInsight"`
}

// AdviceItem is one card of the advice panel.
type AdviceItem struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Text  string `json:"text"`
}

// BuildResultView maps a prediction result to the results regions.
// Unknown sun signs resolve to fallbackSign's profile and set Characteristics.Fallback.
func BuildResultView(r prediction.Result, lookup CharacteristicsLookup, fallbackSign string) ResultView {
	chart := r.BirthChart
	pred := r.Predictions

	return ResultView{
		BirthChart: BirthChartView{
			Name:           chart.Name,
			BirthDate:      chart.BirthDate,
			Gender:         chart.Gender,
			SunSign:        chart.SunSign.Name,
			SunSymbol:      chart.SunSign.Symbol,
			Element:        chart.Element,
			LifePathNumber: chart.LifePathNumber,
		},
		Characteristics: buildCharacteristics(chart.SunSign.Name, lookup, fallbackSign),
		CurrentPhase: PhaseView{
			Phase: pred.CurrentLifePhase,
			Age:   pred.CurrentAge,
		},
		Past: PastView{
			Summary:    pred.Past.Summary,
			Highlights: orEmpty(pred.Past.Highlights),
			Lessons:    orEmpty(pred.Past.Lessons),
		},
		Present: PresentView{
			Focus:         pred.Present.CurrentFocus,
			Opportunities: orEmpty(pred.Present.Opportunities),
			Challenges:    orEmpty(pred.Present.Challenges),
		},
		Future: FutureView{
			Timeframe:         pred.Future.Timeframe,
			Outcomes:          orEmpty(pred.Future.PotentialOutcomes),
			Recommendations:   orEmpty(pred.Future.Recommendations),
			NumerologyInsight: pred.Future.NumerologyInsight,
		},
		Advice: buildAdvice(r.Advice),
	}
}

func buildCharacteristics(sign string, lookup CharacteristicsLookup, fallbackSign string) CharacteristicsView {
	c, ok := lookup(sign)
	resolved := sign
	if !ok {
		resolved = fallbackSign
		c, _ = lookup(fallbackSign)
	}
	return CharacteristicsView{
		Sign:       resolved,
		Traits:     orEmpty(c.Traits),
		Strengths:  orEmpty(c.Strengths),
		Weaknesses: orEmpty(c.Weaknesses),
		Compatible: orEmpty(c.Compatibility),
		Fallback:   !ok,
	}
}

func buildAdvice(a prediction.Advice) []AdviceItem {
	return []AdviceItem{
		{Key: "career", Title: "Career", Icon: "💼", Color: "#10b981", Text: a.Career},
		{Key: "relationships", Title: "Relationships", Icon: "❤️", Color: "#ec4899", Text: a.Relationships},
		{Key: "health", Title: "Health", Icon: "🏃", Color: "#3b82f6", Text: a.Health},
		{Key: "finances", Title: "Finances", Icon: "💰", Color: "#f59e0b", Text: a.Finances},
		{Key: "spiritual", Title: "Spiritual", Icon: "🧘", Color: "#8b5cf6", Text: a.Spiritual},
		{Key: "general", Title: "General", Icon: "✨", Color: "#06b6d4", Text: a.General},
	}
}

func orEmpty(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
