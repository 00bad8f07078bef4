package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/yndnr/sigmesh-go/internal/core/domain"
	"github.com/yndnr/sigmesh-go/internal/telemetry/logger"
	"github.com/yndnr/sigmesh-go/internal/telemetry/metric"
	"github.com/yndnr/sigmesh-go/pkg/token"
)

var json = jsoniter.ConfigDefault

// defaultTimeout bounds one request round-trip.
const defaultTimeout = 30 * time.Second

// Client dispatches management operations to one hub.
type Client struct {
	endpoint domain.HubEndpoint
	sender   domain.Identity
	tokens   token.Provider
	client   *http.Client
	log      logger.Logger
	metrics  *metric.Registry
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger injects the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics injects the metrics registry.
func WithMetrics(m *metric.Registry) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for one hub endpoint and sender identity.
func NewClient(endpoint domain.HubEndpoint, sender domain.Identity, tokens token.Provider, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		sender:   sender,
		tokens:   tokens,
		client:   &http.Client{Timeout: defaultTimeout},
		log:      logger.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the hub endpoint the client targets.
func (c *Client) Endpoint() domain.HubEndpoint {
	return c.endpoint
}

// Sender returns the client's sender identity.
func (c *Client) Sender() domain.Identity {
	return c.sender
}

// BuildRequest builds one authenticated request for the given route.
//
// The route URL is authoritative and used verbatim. The bearer token is
// minted for exactly that URL. Send-type operations carry the fixed
// demo payload as a JSON body; membership operations carry no body.
func (c *Client) BuildRequest(ctx context.Context, route domain.Route, withBody bool) (*http.Request, error) {
	var bodyReader io.Reader
	if withBody {
		data, err := json.Marshal(domain.DemoPayload(c.sender.String()))
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, route.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	accessToken, err := c.tokens.GenerateAccessToken(route.URL, c.sender.String())
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if withBody {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Dispatch resolves the operation's route, sends the request and
// classifies the response by status alone: 202 is accepted, anything
// else rejected. The response body is not read; it is drained and
// closed on every path before returning.
func (c *Client) Dispatch(ctx context.Context, op domain.Operation) domain.Outcome {
	route := domain.ResolveRoute(op, c.endpoint)

	req, err := c.BuildRequest(ctx, route, op.HasBody())
	if err != nil {
		return c.record(op, domain.Failed(err))
	}

	c.log.Debug("dispatching", "operation", op.Kind.String(), "method", route.Method, "url", route.URL)

	resp, err := c.client.Do(req)
	if err != nil {
		return c.record(op, domain.Failed(domain.ErrTransportFailure.WithCause(err)))
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
	}()

	return c.record(op, domain.ClassifyStatus(resp.StatusCode))
}

// record counts the outcome and passes it through.
func (c *Client) record(op domain.Operation, o domain.Outcome) domain.Outcome {
	if c.metrics != nil {
		c.metrics.Record(op.Kind.String(), outcomeLabel(o))
	}
	if !o.Accepted {
		c.log.Debug("dispatch not accepted", "operation", op.Kind.String(), "status", o.Status, "err", o.Err)
	}
	return o
}

func outcomeLabel(o domain.Outcome) string {
	switch {
	case o.Err != nil:
		return metric.OutcomeFailed
	case o.Accepted:
		return metric.OutcomeAccepted
	default:
		return metric.OutcomeRejected
	}
}
