package prediction

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
	"github.com/yanqian/astropredict-web/pkg/util"
)

const (
	msgCompatibilityFailed = "Failed to check compatibility"
	msgRequestInFlight     = "A request is already in progress, please wait"
	msgNoResult            = "No prediction data available"
	defaultInFlightTimeout = 30 * time.Second
)

// Service drives the prediction page workflow.
type Service interface {
	Session(ctx context.Context, id string) (Session, error)
	Submit(ctx context.Context, id string, form Form) (Session, error)
	Predict(ctx context.Context, form Form) (Result, error)
	CheckCompatibility(ctx context.Context, id string, form CompatibilityForm) (Session, error)
	Compatibility(ctx context.Context, form CompatibilityForm) (Compatibility, error)
	Reset(ctx context.Context, id string) (Session, error)
	Close(ctx context.Context, id string) (Session, error)
	CurrentResult(ctx context.Context, id string) (Result, error)
}

// PredictionAPI is the backend used by the service.
type PredictionAPI interface {
	Predict(ctx context.Context, in BirthInput) (Result, error)
	CheckCompatibility(ctx context.Context, sign1, sign2 string) (Compatibility, error)
}

type service struct {
	cfg    Config
	api    PredictionAPI
	store  Store
	logger *slog.Logger
	now    util.Clock
}

// NewService wires up the prediction domain.
func NewService(cfg Config, api PredictionAPI, store Store, logger *slog.Logger) Service {
	if cfg.InFlightTimeout <= 0 {
		cfg.InFlightTimeout = defaultInFlightTimeout
	}
	return &service{
		cfg:    cfg,
		api:    api,
		store:  store,
		logger: logger.With("component", "prediction.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Session(ctx context.Context, id string) (Session, error) {
	return s.load(ctx, id)
}

func (s *service) Submit(ctx context.Context, id string, form Form) (Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Form = form

	in, err := ParseForm(form)
	if err != nil {
		s.logger.Info("prediction form rejected", "session", id, "category", ValidationCategory(err))
		return s.fail(ctx, sess, err)
	}

	sess, release, err := s.begin(ctx, sess, ActionPredict)
	if err != nil {
		return sess, err
	}
	defer release()

	result, callErr := s.predict(ctx, in)

	// Another request from the same browser may have changed the session meanwhile.
	if latest, err := s.load(ctx, id); err == nil {
		sess = latest
	}
	if callErr != nil {
		sess.setState(ActionPredict, StateError)
		return s.fail(ctx, sess, callErr)
	}

	sess.Result = &result
	sess.ResultsVisible = true
	sess.Notice = nil
	sess.setState(ActionPredict, StateDone)
	s.logger.Info("prediction stored", "session", id, "sun_sign", result.BirthChart.SunSign.Name)
	return sess, s.save(context.WithoutCancel(ctx), sess)
}

func (s *service) Predict(ctx context.Context, form Form) (Result, error) {
	in, err := ParseForm(form)
	if err != nil {
		return Result{}, err
	}
	return s.predict(ctx, in)
}

func (s *service) predict(ctx context.Context, in BirthInput) (Result, error) {
	result, err := s.api.Predict(ctx, in)
	if err != nil {
		s.logger.Warn("prediction request failed", "code", apperrors.CodeOf(err), "error", err)
		return Result{}, err
	}
	if err := result.Validate(); err != nil {
		s.logger.Error("prediction response violates contract", "error", err)
		return Result{}, apperrors.Wrap("backend_error", "Failed to get prediction", err)
	}
	return result, nil
}

func (s *service) CheckCompatibility(ctx context.Context, id string, form CompatibilityForm) (Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.CompatibilityForm = form

	signs, err := validateSigns(form)
	if err != nil {
		return s.fail(ctx, sess, err)
	}
	sess.CompatibilityForm = signs

	sess, release, err := s.begin(ctx, sess, ActionCompatibility)
	if err != nil {
		return sess, err
	}
	defer release()

	res, callErr := s.compatibility(ctx, signs)

	if latest, err := s.load(ctx, id); err == nil {
		sess = latest
	}
	if callErr != nil {
		sess.setState(ActionCompatibility, StateError)
		return s.fail(ctx, sess, callErr)
	}

	sess.Compatibility = &res
	sess.Notice = nil
	sess.setState(ActionCompatibility, StateDone)
	return sess, s.save(context.WithoutCancel(ctx), sess)
}

func (s *service) Compatibility(ctx context.Context, form CompatibilityForm) (Compatibility, error) {
	signs, err := validateSigns(form)
	if err != nil {
		return Compatibility{}, err
	}
	return s.compatibility(ctx, signs)
}

func (s *service) compatibility(ctx context.Context, signs CompatibilityForm) (Compatibility, error) {
	res, err := s.api.CheckCompatibility(ctx, signs.Sign1, signs.Sign2)
	if err != nil {
		s.logger.Warn("compatibility request failed", "code", apperrors.CodeOf(err), "error", err)
		code := apperrors.CodeOf(err)
		if code == "" {
			code = "backend_error"
		}
		return Compatibility{}, apperrors.Wrap(code, msgCompatibilityFailed, err)
	}
	return res, nil
}

// Reset clears the form and hides the results; the stored result stays until overwritten.
func (s *service) Reset(ctx context.Context, id string) (Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Form = Form{}
	sess.ResultsVisible = false
	sess.Notice = nil
	sess.Requests = NewSession(id).Requests
	return sess, s.save(ctx, sess)
}

// Close hides the results region only.
func (s *service) Close(ctx context.Context, id string) (Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.ResultsVisible = false
	sess.Notice = nil
	return sess, s.save(ctx, sess)
}

func (s *service) CurrentResult(ctx context.Context, id string) (Result, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if sess.Result == nil {
		return Result{}, apperrors.Wrap("no_result", msgNoResult, nil)
	}
	return *sess.Result, nil
}

// begin guards action against duplicate concurrent requests and marks it pending.
// The returned release func always clears the in-flight marker.
func (s *service) begin(ctx context.Context, sess Session, action Action) (Session, func(), error) {
	ok, err := s.store.Acquire(ctx, sess.ID, action, s.cfg.InFlightTimeout)
	if err != nil {
		return sess, nil, apperrors.Wrap("session_error", "failed to update session", err)
	}
	if !ok {
		s.logger.Warn("duplicate request rejected", "session", sess.ID, "action", action)
		return sess, nil, apperrors.Wrap("request_in_flight", msgRequestInFlight, nil)
	}
	release := func() {
		if err := s.store.Release(context.WithoutCancel(ctx), sess.ID, action); err != nil {
			s.logger.Error("release in-flight marker failed", "session", sess.ID, "action", action, "error", err)
		}
	}
	sess.setState(action, StatePending)
	sess.Notice = nil
	if err := s.save(ctx, sess); err != nil {
		release()
		return sess, nil, err
	}
	return sess, release, nil
}

// fail persists sess and returns it with cause attached as its notice.
// The notice belongs to the failed action only and is never stored.
func (s *service) fail(ctx context.Context, sess Session, cause error) (Session, error) {
	sess.Notice = nil
	if err := s.save(context.WithoutCancel(ctx), sess); err != nil {
		s.logger.Error("save session failed", "session", sess.ID, "error", err)
	}
	sess.Notice = noticeFor(cause)
	return sess, cause
}

func noticeFor(err error) *Notice {
	if apperrors.IsCode(err, "invalid_input") {
		return &Notice{Kind: NoticeValidation, Category: ValidationCategory(err), Message: apperrors.MessageOf(err)}
	}
	return &Notice{Kind: NoticeError, Category: apperrors.CodeOf(err), Message: apperrors.MessageOf(err)}
}

func (s *service) load(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, apperrors.Wrap("session_error", "session id missing", nil)
	}
	sess, ok, err := s.store.Load(ctx, id)
	if err != nil {
		return Session{}, apperrors.Wrap("session_error", "failed to load session", err)
	}
	if !ok {
		return NewSession(id), nil
	}
	return sess, nil
}

func (s *service) save(ctx context.Context, sess Session) error {
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		return apperrors.Wrap("session_error", "failed to save session", err)
	}
	return nil
}
