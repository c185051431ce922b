package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/attrvalid/pkg/environment"
	"github.com/dmitrymomot/attrvalid/pkg/httpserver"
	"github.com/dmitrymomot/attrvalid/pkg/i18n"
	"github.com/dmitrymomot/attrvalid/pkg/logger"
	"github.com/dmitrymomot/attrvalid/pkg/requestid"
	"github.com/dmitrymomot/attrvalid/pkg/validation"
)

const maxBodySize = 1 << 20

// ValidateRequest is the body of a validation call. Only accepts the same
// loose selector forms as validation.SelectorFrom.
type ValidateRequest struct {
	Values validation.Values `json:"values"`
	Only   any               `json:"only,omitempty"`
}

// ValidateResponse is returned for valid and invalid values.
type ValidateResponse struct {
	Valid  bool                                  `json:"valid"`
	Errors map[string]validation.AttributeReport `json:"errors,omitempty"`
}

// ErrorResponse is returned for malformed requests and fatal failures.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Option configures the router.
type Option func(*api)

// WithLogger sets the request logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *api) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records outcomes on m and serves it at /metrics.
func WithMetrics(m *Metrics) Option {
	return func(a *api) { a.metrics = m }
}

// WithTranslator localizes violation messages in the language negotiated
// from Accept-Language.
func WithTranslator(t *i18n.Translator) Option {
	return func(a *api) { a.translator = t }
}

// WithEnvironment tags request contexts with env.
func WithEnvironment(env environment.Environment) Option {
	return func(a *api) { a.env = env }
}

type api struct {
	registry   Registry
	logger     *slog.Logger
	metrics    *Metrics
	env        environment.Environment
	translator *i18n.Translator
}

// NewRouter mounts the validation API:
//
//	POST /v1/models/{model}/validate
//	GET  /v1/models
//	GET  /health
//	GET  /metrics
func NewRouter(reg Registry, opts ...Option) http.Handler {
	a := &api{
		registry: reg,
		logger:   logger.Discard(),
		metrics:  NewMetrics(),
		env:      environment.Development,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("httpapi"))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(a.env))
	r.Use(middleware.Recoverer)
	if a.translator != nil {
		r.Use(i18n.Middleware(a.translator))
	}

	r.Get("/health", httpserver.HealthCheckHandler(a.logger, a.ready))
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Route("/v1/models", func(r chi.Router) {
		r.Get("/", a.listModels)
		r.Post("/{model}/validate", a.validate)
	})

	return r
}

func (a *api) ready(context.Context) error {
	if len(a.registry) == 0 {
		return errors.New("no models loaded")
	}
	return nil
}

func (a *api) listModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"models": a.registry.Names()})
}

func (a *api) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	model := chi.URLParam(r, "model")

	v, ok := a.registry[model]
	if !ok {
		a.writeError(w, r, http.StatusNotFound, "unknown model "+model)
		return
	}

	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	start := time.Now()
	errs, err := v.Validate(ctx, req.Values, validation.SelectorFrom(req.Only))
	elapsed := time.Since(start)

	switch {
	case err != nil:
		a.metrics.Observe(model, OutcomeFatal, elapsed)
		a.logger.ErrorContext(ctx, "validation failed", logger.Model(model), logger.Error(err))
		a.writeError(w, r, http.StatusInternalServerError, err.Error())
	case len(errs) > 0:
		a.metrics.Observe(model, OutcomeInvalid, elapsed)
		a.logger.DebugContext(ctx, "values rejected", logger.Model(model), logger.Outcome(OutcomeInvalid))
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: a.report(r, errs)})
	default:
		a.metrics.Observe(model, OutcomeValid, elapsed)
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: true})
	}
}

func (a *api) report(r *http.Request, errs validation.Errors) map[string]validation.AttributeReport {
	if a.translator == nil {
		return errs.Report()
	}
	lang := i18n.GetLocale(r.Context())
	return errs.ReportWith(func(key string, values map[string]any) (string, bool) {
		return a.translator.Lookup(lang, key, values)
	})
}

func (a *api) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: requestid.FromContext(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
