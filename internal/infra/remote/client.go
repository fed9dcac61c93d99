// Package remote talks to the event GraphQL API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"event-sync-service/internal/infra"
	"event-sync-service/internal/pkg/errs"
)

var (
	ErrGraphQL     = errs.New("graphql error")
	ErrHTTPStatus  = errs.New("unexpected http status")
	ErrEmptyResult = errs.New("empty graphql result")
)

const maxResponseBytes = 32 << 20

type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(endpoint, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "graphql"),
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do runs one single-attempt GraphQL operation and decodes data into out.
func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return errs.Wrapf(err, "failed to encode %s request", op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrapf(err, "failed to build %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapErr(c.logger, infra.KindRemoteFailure, op+" request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Wrapf(err, "failed to read %s response", op)
	}
	c.logger.Debug("graphql call", "operation", op, "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode != http.StatusOK {
		return infra.WrapErr(c.logger, infra.KindRemoteFailure, op+" failed",
			errs.Wrapf(ErrHTTPStatus, "%s", resp.Status))
	}

	var decoded gqlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errs.Wrapf(err, "failed to decode %s response", op)
	}
	if len(decoded.Errors) > 0 {
		msgs := make([]string, 0, len(decoded.Errors))
		for _, e := range decoded.Errors {
			msgs = append(msgs, e.Message)
		}
		return errs.Wrapf(ErrGraphQL, "%s", strings.Join(msgs, "; "))
	}
	if out == nil {
		return nil
	}
	if len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return errs.Wrapf(ErrEmptyResult, "%s returned no data", op)
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return errs.Wrapf(err, "failed to decode %s data", op)
	}
	return nil
}

// Ping issues a trivial query; used as the reachability probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", `query Ping { __typename }`, nil, nil)
}

func (c *Client) String() string {
	return fmt.Sprintf("graphql(%s)", c.endpoint)
}
