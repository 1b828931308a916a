package http

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/report"
	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

const (
	msgNoDownload = "No prediction data to download"
	msgNoShare    = "No prediction data to share"
)

// Report serves the plain-text report inline.
func (h *Handler) Report(c *gin.Context) {
	result, ok := h.currentResult(c, msgNoDownload)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Generate(result, h.site, h.now())))
}

// DownloadReport serves the report as a file attachment.
func (h *Handler) DownloadReport(c *gin.Context) {
	result, ok := h.currentResult(c, msgNoDownload)
	if !ok {
		return
	}
	body := report.Generate(result, h.site, h.now())
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename(result)}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// Share returns the share message for the current result.
func (h *Handler) Share(c *gin.Context) {
	result, err := h.predictionSvc.CurrentResult(c.Request.Context(), getSessionID(c))
	if err != nil {
		httpErr := fromAppError(err)
		if apperrors.IsCode(err, "no_result") {
			httpErr.Message = msgNoShare
		}
		abortWithError(c, httpErr)
		return
	}
	c.JSON(http.StatusOK, report.Share(result, h.site))
}

// currentResult loads the session result or renders the page with missingMsg.
func (h *Handler) currentResult(c *gin.Context, missingMsg string) (prediction.Result, bool) {
	ctx := c.Request.Context()
	id := getSessionID(c)
	result, err := h.predictionSvc.CurrentResult(ctx, id)
	if err == nil {
		return result, true
	}
	if apperrors.IsCode(err, "no_result") {
		err = apperrors.Wrap("no_result", missingMsg, nil)
	}
	sess, loadErr := h.predictionSvc.Session(ctx, id)
	if loadErr != nil {
		sess = prediction.Session{}
	}
	sess.Notice = nil
	h.renderFailure(c, sess, err)
	return prediction.Result{}, false
}
