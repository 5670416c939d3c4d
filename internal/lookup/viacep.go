package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/rodrigoasouza93/brdocs/internal/dto"
	"github.com/rodrigoasouza93/brdocs/internal/validator"
)

const (
	DefaultBaseURL = "https://viacep.com.br/ws"
	DefaultTimeout = 5 * time.Second
)

// ViaCEP asks the ViaCEP directory whether a postal code exists. Each call
// issues exactly one GET request bounded by the configured timeout.
type ViaCEP struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
}

var _ validator.PostalLookup = (*ViaCEP)(nil)

// Option configures a ViaCEP client.
type Option func(*ViaCEP)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *ViaCEP) {
		c.httpClient = client
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *ViaCEP) {
		c.tracer = tracer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *ViaCEP) {
		c.logger = logger
	}
}

// NewViaCEP builds a client for baseURL, e.g. "https://viacep.com.br/ws".
// A zero timeout falls back to DefaultTimeout.
func NewViaCEP(baseURL string, timeout time.Duration, opts ...Option) *ViaCEP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &ViaCEP{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer: otel.Tracer("brdocs/lookup"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists returns false when the directory marks code as unknown. Every other
// failure is returned as an *Error.
func (c *ViaCEP) Exists(ctx context.Context, code string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "GET-LOCATION", trace.WithAttributes(attribute.String("cep", code)))
	defer span.End()

	found, err := c.exists(ctx, code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "postal lookup failed",
			slog.String("cep", code),
			slog.String("kind", string(KindOf(err))),
			slog.Any("error", err))
		return false, err
	}
	span.SetAttributes(attribute.Bool("found", found))
	return found, nil
}

func (c *ViaCEP) exists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	locationURL := fmt.Sprintf("%s/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locationURL, nil)
	if err != nil {
		return false, newError(KindRequest, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	c.logger.DebugContext(ctx, "postal lookup", slog.String("url", locationURL))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return false, newError(KindTimeout, "request timeout", err)
		}
		return false, newError(KindUnreachable, "failed to execute request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &Error{
			Kind:       KindBadStatus,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status",
		}
	}

	var location dto.LocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		if isTimeout(err) {
			return false, newError(KindTimeout, "response body timeout", err)
		}
		return false, newError(KindMalformed, "failed to decode response", err)
	}
	return !location.NotFound(), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
