package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
)

// TimestampLayout formats the "Generated:" line.
const TimestampLayout = "2006-01-02 15:04:05 MST"

const (
	ruleLine   = "────────────────────────────────────────────────────────────────"
	doubleLine = "════════════════════════════════════════════════════════════════"
)

// Options carries site identity used in the report footer and share text.
type Options struct {
	SiteName string
	SiteURL  string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.SiteName) == "" {
		o.SiteName = "AstroPredict"
	}
	if strings.TrimSpace(o.SiteURL) == "" {
		o.SiteURL = "https://astropredict.com"
	}
	return o
}

// Generate renders r as a plain-text report. Output depends only on its
// arguments; generatedAt only appears on the "Generated:" line.
func Generate(r prediction.Result, opts Options, generatedAt time.Time) string {
	opts = opts.withDefaults()
	birth := r.BirthChart
	pred := r.Predictions
	advice := r.Advice

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Fprintf(&b, "║%s║\n", center("ASTROLOGICAL REPORT - "+opts.SiteName, 64))
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")

	section(&b, "PERSONAL INFORMATION")
	fmt.Fprintf(&b, "Name: %s\n", birth.Name)
	fmt.Fprintf(&b, "Date of Birth: %s\n", birth.BirthDate)
	fmt.Fprintf(&b, "Gender: %s\n", birth.Gender)
	fmt.Fprintf(&b, "Birth Location: Latitude %s, Longitude %s\n", formatCoord(birth.Location.Latitude), formatCoord(birth.Location.Longitude))

	section(&b, "BIRTH CHART ANALYSIS")
	fmt.Fprintf(&b, "Sun Sign: %s %s\n", birth.SunSign.Name, birth.SunSign.Symbol)
	fmt.Fprintf(&b, "Element: %s\n", birth.Element)
	fmt.Fprintf(&b, "Life Path Number: %d\n", birth.LifePathNumber)

	section(&b, "LIFE JOURNEY")
	fmt.Fprintf(&b, "Current Age: %d years\n", pred.CurrentAge)
	fmt.Fprintf(&b, "Current Life Phase: %s\n", pred.CurrentLifePhase)

	section(&b, "PAST PREDICTIONS (Birth to Now)")
	b.WriteString(pred.Past.Summary + "\n")
	bullets(&b, "Highlights", pred.Past.Highlights)
	bullets(&b, "Lessons Learned", pred.Past.Lessons)

	section(&b, "PRESENT INSIGHTS")
	fmt.Fprintf(&b, "Current Focus: %s\n", pred.Present.CurrentFocus)
	bullets(&b, "Opportunities", pred.Present.Opportunities)
	bullets(&b, "Challenges", pred.Present.Challenges)

	section(&b, "FUTURE PREDICTIONS")
	fmt.Fprintf(&b, "Timeframe: %s\n", pred.Future.Timeframe)
	bullets(&b, "Potential Outcomes", pred.Future.PotentialOutcomes)
	bullets(&b, "Recommendations", pred.Future.Recommendations)
	fmt.Fprintf(&b, "\nNumerology Insight: %s\n", pred.Future.NumerologyInsight)

	section(&b, "PERSONALIZED ADVICE")
	fmt.Fprintf(&b, "Career: %s\n", advice.Career)
	fmt.Fprintf(&b, "Relationships: %s\n", advice.Relationships)
	fmt.Fprintf(&b, "Health: %s\n", advice.Health)
	fmt.Fprintf(&b, "Finances: %s\n", advice.Finances)
	fmt.Fprintf(&b, "Spiritual: %s\n", advice.Spiritual)
	fmt.Fprintf(&b, "General: %s\n", advice.General)

	b.WriteString("\n" + doubleLine + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format(TimestampLayout))
	fmt.Fprintf(&b, "Visit: %s\n", opts.SiteURL)
	b.WriteString(doubleLine + "\n")
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + title + "\n" + ruleLine + "\n")
}

func bullets(b *strings.Builder, title string, items []string) {
	b.WriteString("\n" + title + ":\n")
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%g", v)
}

func center(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}

// Filename is the download name for r's report.
func Filename(r prediction.Result) string {
	name := strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', '"', '\n', '\r', ':', '*', '?', '<', '>', '|':
			return '_'
		}
		return c
	}, strings.TrimSpace(r.BirthChart.Name))
	return "astrology_report_" + name + ".txt"
}

// ShareMessage is handed to navigator.share, or copied to the clipboard.
type ShareMessage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Share builds the templated share message for r.
func Share(r prediction.Result, opts Options) ShareMessage {
	opts = opts.withDefaults()
	return ShareMessage{
		Title: "My Astrological Profile",
		Text: fmt.Sprintf("I just discovered my astrological profile on %s! My sun sign is %s. Check out your cosmic destiny: %s",
			opts.SiteName, r.BirthChart.SunSign.Name, opts.SiteURL),
		URL: opts.SiteURL,
	}
}
