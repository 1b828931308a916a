package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astropredict-web/internal/domain/display"
	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

const pageTemplate = "index.html.tmpl"

// PageView is everything the page template paints.
type PageView struct {
	SiteName          string
	Signs             []zodiac.Sign
	Genders           []string
	Form              prediction.Form
	Notice            *prediction.Notice
	ShowResults       bool
	HasResult         bool
	Results           *display.ResultView
	CompatibilityForm prediction.CompatibilityForm
	CompatibilityView *display.CompatibilityView
}

// Values match what the prediction backend accepts.
var genders = []string{prediction.GenderMale, prediction.GenderFemale, prediction.GenderOther}

// Index renders the page from the session state.
func (h *Handler) Index(c *gin.Context) {
	sess, err := h.predictionSvc.Session(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.renderFailure(c, prediction.Session{}, err)
		return
	}
	h.renderPage(c, http.StatusOK, sess)
}

// SubmitPrediction handles the birth data form.
func (h *Handler) SubmitPrediction(c *gin.Context) {
	var form prediction.Form
	if err := c.ShouldBind(&form); err != nil {
		h.renderFailure(c, prediction.Session{Form: form}, apperrors.Wrap("invalid_input", "Please fill all required fields", err))
		return
	}
	sess, err := h.predictionSvc.Submit(c.Request.Context(), getSessionID(c), form)
	if err != nil {
		h.renderFailure(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/#results")
}

// SubmitCompatibility handles the compatibility selects.
func (h *Handler) SubmitCompatibility(c *gin.Context) {
	var form prediction.CompatibilityForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderFailure(c, prediction.Session{CompatibilityForm: form}, apperrors.Wrap("invalid_input", "Please select both zodiac signs", err))
		return
	}
	sess, err := h.predictionSvc.CheckCompatibility(c.Request.Context(), getSessionID(c), form)
	if err != nil {
		h.renderFailure(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/#compatibility")
}

// Reset starts a new prediction.
func (h *Handler) Reset(c *gin.Context) {
	sess, err := h.predictionSvc.Reset(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.renderFailure(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/#predict")
}

// Close hides the results region.
func (h *Handler) Close(c *gin.Context) {
	sess, err := h.predictionSvc.Close(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.renderFailure(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// renderFailure re-renders the page with err as its banner.
func (h *Handler) renderFailure(c *gin.Context, sess prediction.Session, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("page request failed", "path", c.Request.URL.Path, "code", apperrors.CodeOf(err), "error", err)
	} else {
		h.logger.Warn("page request failed", "path", c.Request.URL.Path, "code", apperrors.CodeOf(err), "error", err)
	}
	if sess.Notice == nil {
		kind := prediction.NoticeError
		category := apperrors.CodeOf(err)
		if category == "invalid_input" {
			kind = prediction.NoticeValidation
			category = prediction.ValidationCategory(err)
		}
		sess.Notice = &prediction.Notice{Kind: kind, Category: category, Message: apperrors.MessageOf(err)}
	}
	h.renderPage(c, status, sess)
}

func (h *Handler) renderPage(c *gin.Context, status int, sess prediction.Session) {
	c.HTML(status, pageTemplate, h.pageView(sess))
}

func (h *Handler) pageView(sess prediction.Session) PageView {
	view := PageView{
		SiteName:          h.site.SiteName,
		Signs:             h.signs(),
		Genders:           genders,
		Form:              sess.Form,
		Notice:            sess.Notice,
		HasResult:         sess.Result != nil,
		CompatibilityForm: sess.CompatibilityForm,
	}
	if view.SiteName == "" {
		view.SiteName = "AstroPredict"
	}
	if sess.Result != nil && sess.ResultsVisible {
		results := h.resultView(*sess.Result)
		view.ShowResults = true
		view.Results = &results
	}
	if sess.Compatibility != nil {
		compat := display.BuildCompatibilityView(*sess.Compatibility)
		view.CompatibilityView = &compat
	}
	return view
}
