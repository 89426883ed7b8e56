/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package handler implements the Lambda entry points: read the whole service
// catalog, pick one service at random, and return both.
package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/suparena/serviceroulette/config"
	"github.com/suparena/serviceroulette/datastore"
	"github.com/suparena/serviceroulette/errors"
	"github.com/suparena/serviceroulette/selector"
	"github.com/suparena/serviceroulette/storagemodels"
)

// Handler serves invocations. It holds no per-invocation state and is safe
// for concurrent use when its Scanner and Selector are.
type Handler struct {
	store    datastore.Scanner[storagemodels.Record]
	selector *selector.Selector
	params   storagemodels.ScanParams
	scanOpts []storagemodels.ScanOption
	logger   *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithSelector replaces the default global-generator selector.
func WithSelector(s *selector.Selector) Option {
	return func(h *Handler) {
		h.selector = s
	}
}

// WithConfig applies the table and paging settings of cfg.
func WithConfig(cfg config.Config) Option {
	return func(h *Handler) {
		h.params = storagemodels.ScanParams{
			TableName:      cfg.TableName,
			ConsistentRead: cfg.ConsistentRead,
		}
		if cfg.PageSize > 0 {
			h.scanOpts = append(h.scanOpts, storagemodels.WithPageSize(cfg.PageSize))
		}
	}
}

// New returns a Handler reading from store.
func New(store datastore.Scanner[storagemodels.Record], opts ...Option) *Handler {
	h := &Handler{store: store}
	for _, opt := range opts {
		opt(h)
	}
	if h.selector == nil {
		h.selector = selector.New(nil)
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// Handle is the raw-event entry point. The event payload is ignored.
//
// A failed scan returns the store's error unchanged and no Response.
// An empty catalog is not an error: the Response carries an empty
// serviceList and a null randomService.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (*Response, error) {
	return h.invoke(ctx, h.requestLogger(ctx))
}

// HandleAPIGateway serves API Gateway proxy integrations, which need the
// body as a string and header values as strings.
func (h *Handler) HandleAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := h.requestLogger(ctx).With(
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
	)

	resp, err := h.invoke(ctx, logger)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	body, err := json.Marshal(resp.Body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to encode response body: %w", err)
	}

	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = fmt.Sprint(v)
	}
	headers["Content-Type"] = "application/json"

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(body),
	}, nil
}

func (h *Handler) invoke(ctx context.Context, logger *zap.Logger) (*Response, error) {
	params := h.params
	opts := make([]storagemodels.ScanOption, 0, len(h.scanOpts)+1)
	opts = append(opts, h.scanOpts...)
	opts = append(opts, storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
		logger.Debug("scan page read",
			zap.Int("pages", p.PagesRead),
			zap.Int64("items", p.ItemsRead),
			zap.Float64("itemsPerSecond", p.CurrentRate),
		)
	}))

	records, err := h.store.Scan(ctx, &params, opts...)
	if err != nil {
		logger.Error("catalog scan failed", zap.String("table", params.TableName), zap.Error(err))
		return nil, err
	}

	picked, index, err := h.selector.Select(records)
	switch {
	case errors.IsEmptyCollection(err):
		logger.Warn("catalog is empty, no service selected", zap.String("table", params.TableName))
		return newResponse(records, nil), nil
	case err != nil:
		logger.Error("service selection failed", zap.Int("services", len(records)), zap.Error(err))
		return nil, err
	}

	logger.Info("service selected",
		zap.Int("services", len(records)),
		zap.Int("index", index),
	)
	return newResponse(records, picked), nil
}

func (h *Handler) requestLogger(ctx context.Context) *zap.Logger {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return h.logger
	}
	return h.logger.With(
		zap.String("requestId", lc.AwsRequestID),
		zap.String("function", lambdacontext.FunctionName),
	)
}
