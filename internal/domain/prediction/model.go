package prediction

import (
	"errors"
	"strings"
	"time"
)

// Form is the raw state of the birth data form as submitted by the browser.
type Form struct {
	Name      string `form:"name" json:"name"`
	BirthDate string `form:"birth_date" json:"birth_date"`
	BirthTime string `form:"birth_time" json:"birth_time"`
	Latitude  string `form:"latitude" json:"latitude"`
	Longitude string `form:"longitude" json:"longitude"`
	Gender    string `form:"gender" json:"gender"`
}

// BirthInput is the validated payload sent to the backend.
type BirthInput struct {
	Name      string  `json:"name" validate:"required"`
	BirthDate string  `json:"birth_date" validate:"required"`
	BirthTime string  `json:"birth_time" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Gender    string  `json:"gender" validate:"required"`
}

// CompatibilityForm is the raw state of the compatibility selects.
type CompatibilityForm struct {
	Sign1 string `form:"sign1" json:"sign1"`
	Sign2 string `form:"sign2" json:"sign2"`
}

// Result mirrors the backend /predict response.
type Result struct {
	Success      bool        `json:"success,omitempty"`
	PredictionID string      `json:"prediction_id,omitempty"`
	BirthChart   BirthChart  `json:"birth_chart"`
	Predictions  Predictions `json:"predictions"`
	Advice       Advice      `json:"advice"`
}

type BirthChart struct {
	Name           string   `json:"name"`
	BirthDate      string   `json:"birth_date"`
	Gender         string   `json:"gender"`
	Location       Location `json:"location"`
	SunSign        SunSign  `json:"sun_sign"`
	Element        string   `json:"element"`
	LifePathNumber int      `json:"life_path_number"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SunSign struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type Predictions struct {
	CurrentAge       int     `json:"current_age"`
	CurrentLifePhase string  `json:"current_life_phase"`
	Past             Past    `json:"past_prediction"`
	Present          Present `json:"present_prediction"`
	Future           Future  `json:"future_prediction"`
}

type Past struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Lessons    []string `json:"lessons"`
}

type Present struct {
	CurrentFocus  string   `json:"current_focus"`
	Opportunities []string `json:"opportunities"`
	Challenges    []string `json:"challenges"`
}

type Future struct {
	Timeframe         string   `json:"timeframe"`
	PotentialOutcomes []string `json:"potential_outcomes"`
	Recommendations   []string `json:"recommendations"`
	NumerologyInsight string   `json:"numerology_insight"`
}

// Advice holds the six fixed life-domain recommendations.
type Advice struct {
	Career        string `json:"career"`
	Relationships string `json:"relationships"`
	Health        string `json:"health"`
	Finances      string `json:"finances"`
	Spiritual     string `json:"spiritual"`
	General       string `json:"general"`
}

// Validate reports fields the backend contract guarantees but the payload lacks.
func (r Result) Validate() error {
	var missing []string
	if strings.TrimSpace(r.BirthChart.Name) == "" {
		missing = append(missing, "birth_chart.name")
	}
	if strings.TrimSpace(r.BirthChart.SunSign.Name) == "" {
		missing = append(missing, "birth_chart.sun_sign.name")
	}
	if strings.TrimSpace(r.Predictions.CurrentLifePhase) == "" {
		missing = append(missing, "predictions.current_life_phase")
	}
	if r.Advice == (Advice{}) {
		missing = append(missing, "advice")
	}
	if len(missing) > 0 {
		return errors.New("response missing " + strings.Join(missing, ", "))
	}
	return nil
}

// Compatibility mirrors the backend /zodiac-compatibility response.
type Compatibility struct {
	Sign1       string `json:"sign1"`
	Sign2       string `json:"sign2"`
	Score       int    `json:"compatibility_score"`
	Compatible  bool   `json:"compatible"`
	Description string `json:"description"`
}

// Config wires runtime knobs for the prediction domain.
type Config struct {
	// InFlightTimeout bounds how long a pending request blocks the same action.
	InFlightTimeout time.Duration
}
