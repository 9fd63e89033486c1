// Package transport sends console requests to the recommendation REST service.
package transport

import (
	"context"
	"encoding/json"
	"errors"

	"recs-admin/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FallbackMessage is reported when a failure carries no usable message.
const FallbackMessage = "Server error!"

// Request describes one outbound call. Path is relative to the service base
// URL and already carries any query string. A nil Body sends no payload.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Outcome is either a success carrying the raw response body or a failure
// carrying a message fit for the operator.
type Outcome struct {
	OK         bool
	StatusCode int
	Body       []byte
	Message    string
}

// Decode unmarshals a success body into v.
func (o Outcome) Decode(v any) error {
	if !o.OK {
		return errors.New("decode of failed outcome")
	}
	return json.Unmarshal(o.Body, v)
}

// Client issues requests through fiber's fasthttp agent. It keeps no state
// between calls and never retries.
type Client struct {
	baseURL string
	logger  *zap.Logger
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		logger:  logger,
	}
}

// Invoke sends req and resolves it to exactly one outcome. Transport errors
// and non-2xx responses are failures; a context that is already done is a
// failure without sending anything.
func (c *Client) Invoke(ctx context.Context, req Request) Outcome {
	url := c.baseURL + req.Path
	if err := ctx.Err(); err != nil {
		c.logger.Warn("Request not sent", zap.String("method", req.Method), zap.String("url", url), zap.Error(err))
		return Failure(0, nil)
	}

	a := fiber.AcquireAgent()
	r := a.Request()
	r.Header.SetMethod(req.Method)
	r.SetRequestURI(url)
	r.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	r.Header.SetContentType(fiber.MIMEApplicationJSON)
	if req.Body != nil {
		a.JSON(req.Body)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		c.logger.Error("Invalid request", zap.String("url", url), zap.Error(err))
		return Failure(0, nil)
	}

	// Bytes releases the agent
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("Request failed",
			zap.String("method", req.Method),
			zap.String("url", url),
			zap.Errors("errors", errs),
		)
		return Failure(code, nil)
	}

	c.logger.Debug("Request completed",
		zap.String("method", req.Method),
		zap.String("url", url),
		zap.Int("status", code),
	)

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return Failure(code, body)
	}
	return Outcome{OK: true, StatusCode: code, Body: body}
}

// Failure builds a failed outcome, taking the message from the body's
// "message" field when it has one.
func Failure(code int, body []byte) Outcome {
	return Outcome{
		StatusCode: code,
		Body:       body,
		Message:    FailureMessage(body),
	}
}

// FailureMessage extracts the "message" field of an error body, or returns
// FallbackMessage.
func FailureMessage(body []byte) string {
	var resp dto.ErrorResponse
	if len(body) == 0 || json.Unmarshal(body, &resp) != nil || resp.Message == "" {
		return FallbackMessage
	}
	return resp.Message
}
