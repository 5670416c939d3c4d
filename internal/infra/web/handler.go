package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/rodrigoasouza93/brdocs/internal/dto"
	"github.com/rodrigoasouza93/brdocs/internal/lookup"
	"github.com/rodrigoasouza93/brdocs/internal/metrics"
	"github.com/rodrigoasouza93/brdocs/internal/validator"
)

type Webserver struct {
	Validator  *validator.DocumentValidator
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
	OTELTracer trace.Tracer
}

func NewServer(
	v *validator.DocumentValidator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
	otelTracer trace.Tracer,
) *Webserver {
	return &Webserver{
		Validator:  v,
		Metrics:    m,
		Gatherer:   gatherer,
		Logger:     logger,
		OTELTracer: otelTracer,
	}
}

func (we *Webserver) CreateServer() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(we.Logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", we.healthHandler)
	router.Handle("/metrics", promhttp.HandlerFor(we.Gatherer, promhttp.HandlerOpts{}))
	router.Get("/cep/{cep}", we.documentHandler(validator.DocumentTypeCEP))
	router.Get("/cpf/{cpf}", we.documentHandler(validator.DocumentTypeCPF))
	router.Get("/cnpj/{cnpj}", we.documentHandler(validator.DocumentTypeCNPJ))
	router.Post("/validate", we.validateHandler)
	return router
}

func (we *Webserver) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// documentHandler serves GET /{kind}/{value}. A masked CNPJ must arrive with
// its slash escaped as %2F.
func (we *Webserver) documentHandler(kind validator.DocumentType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := url.PathUnescape(chi.URLParam(r, string(kind)))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid path parameter"})
			return
		}
		we.validate(w, r, kind, raw)
	}
}

func (we *Webserver) validateHandler(w http.ResponseWriter, r *http.Request) {
	var input dto.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := input.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	we.validate(w, r, validator.DocumentType(input.Type), input.Value)
}

func (we *Webserver) validate(w http.ResponseWriter, r *http.Request, kind validator.DocumentType, value any) {
	carrier := propagation.HeaderCarrier(r.Header)
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), carrier)
	ctx, span := we.OTELTracer.Start(ctx, "VALIDATE-"+strings.ToUpper(string(kind)))
	defer span.End()

	valid, err := we.Validator.Validate(ctx, kind, value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		we.Metrics.ObserveValidation(string(kind), "error")
		we.writeFailure(w, r, kind, err)
		return
	}

	result := "invalid"
	if valid {
		result = "valid"
	}
	span.SetAttributes(attribute.Bool("valid", valid))
	we.Metrics.ObserveValidation(string(kind), result)

	writeJSON(w, http.StatusOK, dto.ValidateResponse{
		Type:  string(kind),
		Value: value.(string),
		Valid: valid,
	})
}

func (we *Webserver) writeFailure(w http.ResponseWriter, r *http.Request, kind validator.DocumentType, err error) {
	switch {
	case errors.Is(err, validator.ErrInvalidInputType):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input type: value must be a string"})
	case errors.Is(err, validator.ErrUnknownDocumentType):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, lookup.ErrTransport):
		status := http.StatusBadGateway
		if lookup.KindOf(err) == lookup.KindTimeout {
			status = http.StatusGatewayTimeout
		}
		we.Logger.ErrorContext(r.Context(), "postal directory unavailable",
			slog.String("document", string(kind)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		writeJSON(w, status, dto.ErrorResponse{Error: "postal directory unavailable", Kind: string(lookup.KindOf(err))})
	default:
		we.Logger.ErrorContext(r.Context(), "validation failed",
			slog.String("document", string(kind)),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
