package client

import (
	"context"
	"errors"
	"fmt"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// payloadJSON keeps numbers as json.Number so upstream values pass through verbatim.
var payloadJSON = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var errEmptyBody = errors.New("upstream returned an empty response body")

// explorerClientImpl is the fasthttp implementation of port.HTTPExecutor.
type explorerClientImpl struct {
	client *fasthttp.Client
	logger *zap.Logger
}

// NewExplorerClient creates a new explorer HTTP executor. A nil client gets a
// default fasthttp.Client with idempotent-request retries disabled, so every
// invocation makes one attempt. A client passed in is used as configured and
// never modified. The client is shared and holds no per-call state.
func NewExplorerClient(client *fasthttp.Client, logger *zap.Logger) port.HTTPExecutor {
	if client == nil {
		client = newDefaultClient()
	}
	return &explorerClientImpl{
		client: client,
		logger: logger.Named("ExplorerClient"),
	}
}

func newDefaultClient() *fasthttp.Client {
	return &fasthttp.Client{
		Name:                      "bscscan-node",
		MaxIdemponentCallAttempts: 1,
	}
}

// Execute issues one GET for spec and decodes the JSON payload. It does not retry
// and sets no timeout of its own; a deadline on ctx is honoured.
func (c *explorerClientImpl) Execute(ctx context.Context, spec entity.RequestSpec) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entity.TransportError{URL: spec.URL, Cause: err}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(RequestURI(spec))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		c.logger.Error("Failed to execute request to explorer API", zap.String("url", spec.URL), zap.Error(err))
		return nil, &entity.TransportError{URL: spec.URL, Cause: fmt.Errorf("request to %s failed: %w", spec.URL, err)}
	}

	rawBody := resp.Body()
	status := resp.StatusCode()

	if status < 200 || status > 299 {
		message := ExtractUpstreamMessage(rawBody)
		c.logger.Error("Explorer API request failed",
			zap.String("url", spec.URL),
			zap.Int("statusCode", status),
			zap.String("upstreamMessage", message),
		)
		return nil, &entity.TransportError{
			URL:             spec.URL,
			StatusCode:      status,
			UpstreamMessage: message,
			Cause:           fmt.Errorf("explorer API request to %s failed with status %d", spec.URL, status),
		}
	}

	if len(rawBody) == 0 {
		return nil, &entity.TransportError{URL: spec.URL, StatusCode: status, Cause: errEmptyBody}
	}

	var payload any
	if err := payloadJSON.Unmarshal(rawBody, &payload); err != nil {
		c.logger.Error("Failed to decode explorer API response",
			zap.String("url", spec.URL),
			zap.Int("bodyBytes", len(rawBody)),
			zap.Error(err),
		)
		return nil, &entity.TransportError{
			URL:        spec.URL,
			StatusCode: status,
			Cause:      fmt.Errorf("malformed JSON response from %s: %w", spec.URL, err),
		}
	}

	c.logger.Debug("Explorer API response decoded", zap.String("url", spec.URL), zap.Int("bodyBytes", len(rawBody)))
	return payload, nil
}
