package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astropredict-web/internal/domain/display"
	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/report"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
	"github.com/yanqian/astropredict-web/pkg/util"
)

// HealthChecker reports whether the prediction backend is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	predictionSvc prediction.Service
	registry      *zodiac.Registry
	site          report.Options
	health        HealthChecker
	logger        *slog.Logger
	now           util.Clock
}

// NewHandler constructs the root HTTP handler.
func NewHandler(predictionSvc prediction.Service, registry *zodiac.Registry, site report.Options, health HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		registry:      registry,
		site:          site,
		health:        health,
		logger:        logger.With("component", "http.handler"),
		now:           util.NowUTC,
	}
}

// ListSigns returns the zodiac reference data.
func (h *Handler) ListSigns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"zodiac_signs": h.signs(),
		"source":       h.registry.Source(),
	})
}

// SignCharacteristics returns the static profile of one sign.
func (h *Handler) SignCharacteristics(c *gin.Context) {
	name, ok := canonicalSign(c.Param("name"))
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "unknown_sign", "unknown zodiac sign", nil))
		return
	}
	traits, _ := zodiac.LookupCharacteristics(name)
	c.JSON(http.StatusOK, gin.H{"sign": name, "characteristics": traits})
}

type predictionRequest struct {
	Name      string     `json:"name"`
	BirthDate string     `json:"birth_date"`
	BirthTime string     `json:"birth_time"`
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
	Gender    string     `json:"gender"`
}

func (r predictionRequest) form() prediction.Form {
	return prediction.Form{
		Name:      r.Name,
		BirthDate: r.BirthDate,
		BirthTime: r.BirthTime,
		Latitude:  string(r.Latitude),
		Longitude: string(r.Longitude),
		Gender:    r.Gender,
	}
}

// coordinate accepts either a JSON number or a string.
type coordinate string

func (c *coordinate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = coordinate(n.String())
	return nil
}

// Predict validates the birth data, calls the backend and returns the rendered view model.
func (h *Handler) Predict(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.predictionSvc.Predict(c.Request.Context(), req.form())
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction": result,
		"view":       h.resultView(result),
	})
}

// Compatibility scores a pair of signs.
func (h *Handler) Compatibility(c *gin.Context) {
	var req prediction.CompatibilityForm
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	res, err := h.predictionSvc.Compatibility(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"compatibility": res,
		"view":          display.BuildCompatibilityView(res),
	})
}

func (h *Handler) signs() []zodiac.Sign {
	if signs := h.registry.Signs(); len(signs) > 0 {
		return signs
	}
	return zodiac.FallbackSigns()
}

func (h *Handler) resultView(result prediction.Result) display.ResultView {
	view := display.BuildResultView(result, zodiac.LookupCharacteristics, zodiac.DefaultSign)
	if view.Characteristics.Fallback {
		h.logger.Warn("unknown sun sign, showing default profile", "sun_sign", result.BirthChart.SunSign.Name, "fallback", zodiac.DefaultSign)
	}
	return view
}

func canonicalSign(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, candidate := range zodiac.Names() {
		if strings.EqualFold(candidate, name) {
			return candidate, true
		}
	}
	return "", false
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
