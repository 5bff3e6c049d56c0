// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/gorilla/rpc/v2/json2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// EndpointRequester issues JSON-RPC 2.0 calls against a single endpoint.
type EndpointRequester struct {
	cli  *http.Client
	uri  string
	base string

	metrics *Metrics
	tracer  trace.Tracer
}

// New returns a requester for [uri]. When [base] is non-empty, methods are
// sent as "<base>.<method>".
func New(uri string, base string, opts ...Option) *EndpointRequester {
	e := &EndpointRequester{
		cli:  &http.Client{},
		uri:  uri,
		base: base,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an EndpointRequester.
type Option func(*EndpointRequester)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(cli *http.Client) Option {
	return func(e *EndpointRequester) {
		e.cli = cli
	}
}

// WithMetrics records every request in [m].
func WithMetrics(m *Metrics) Option {
	return func(e *EndpointRequester) {
		e.metrics = m
	}
}

// WithTracer starts a span around every request.
func WithTracer(t trace.Tracer) Option {
	return func(e *EndpointRequester) {
		e.tracer = t
	}
}

func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) (err error) {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return err
	}
	if len(e.base) > 0 {
		method = fmt.Sprintf("%s.%s", e.base, method)
	}
	if e.tracer != nil {
		var span oteltrace.Span
		ctx, span = e.tracer.Start(ctx, "EndpointRequester.SendRequest",
			oteltrace.WithAttributes(
				attribute.String("method", method),
				attribute.String("uri", uri.Redacted()),
			),
		)
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
	}
	start := time.Now()
	err = SendJSONRequest(ctx, e.cli, uri, method, params, reply)
	if e.metrics != nil {
		e.metrics.observe(method, time.Since(start), err)
	}
	return err
}

// SendJSONRequest posts a single JSON-RPC 2.0 request and decodes the
// result into [reply]. Remote errors are returned as *json2.Error.
func SendJSONRequest(
	ctx context.Context,
	cli *http.Client,
	uri *url.URL,
	method string,
	params interface{},
	reply interface{},
) error {
	if params == nil {
		params = []interface{}{}
	}
	requestBodyBytes, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri.String(),
		bytes.NewBuffer(requestBodyBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := cli.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer resp.Body.Close()

	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drop any read error to report the status code
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, bytes.TrimSpace(body))
	}

	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
