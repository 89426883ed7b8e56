/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/suparena/serviceroulette/config"
	"github.com/suparena/serviceroulette/errors"
	"github.com/suparena/serviceroulette/storagemodels"
)

// DynamodbDataStore implements datastore.Scanner[T] by reading a whole DynamoDB table.
type DynamodbDataStore[T any] struct {
	client    sdk.ScanAPIClient
	tableName string
	logger    *zap.Logger
}

// NewDynamoDBClient initializes a DynamoDB client for the configured region.
// Static credentials are used when set, otherwise the default provider chain
// (the Lambda execution role in production).
func NewDynamoDBClient(ctx context.Context, cfg config.Store) (*sdk.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		// a failed read is reported to the caller, never retried
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return client, nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](ctx context.Context, cfg config.Store, logger *zap.Logger) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	store := NewWithClient[T](client, cfg.TableName, logger)
	store.logger.Info("DynamoDB client initialized",
		zap.String("table", cfg.TableName),
		zap.String("region", cfg.Region),
		zap.String("apiVersion", cfg.APIVersion),
	)
	return store, nil
}

// NewWithClient wraps an existing client. The table is used whenever ScanParams
// does not name one.
func NewWithClient[T any](client sdk.ScanAPIClient, tableName string, logger *zap.Logger) *DynamodbDataStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		logger:    logger.Named("ddb"),
	}
}

// TableName returns the default table of the store.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// Scan reads every item in the table, following LastEvaluatedKey until the
// table is exhausted, and decodes each item into T. Any failure, on any page,
// discards what was read so far. A failed request returns the SDK error as is;
// an item that cannot be decoded into T returns a *errors.StoreReadError.
func (d *DynamodbDataStore[T]) Scan(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error) {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	table := d.tableName
	input := &sdk.ScanInput{}
	if params != nil {
		if params.TableName != "" {
			table = params.TableName
		}
		if params.ConsistentRead {
			input.ConsistentRead = aws.Bool(true)
		}
	}
	input.TableName = aws.String(table)
	if options.PageSize > 0 {
		input.Limit = aws.Int32(options.PageSize)
	}

	var (
		itemsRead int64
		pagesRead int
		startTime = time.Now()
	)
	results := make([]T, 0)

	paginator := sdk.NewScanPaginator(d.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		pagesRead++

		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.NewStoreReadError(table, fmt.Errorf("failed to unmarshal page %d: %w", pagesRead, err))
		}
		results = append(results, page...)
		itemsRead += int64(len(page))

		if options.ProgressHandler != nil {
			progress := storagemodels.ScanProgress{
				ItemsRead: itemsRead,
				PagesRead: pagesRead,
				LastKey:   out.LastEvaluatedKey,
				StartTime: startTime,
			}
			if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
				progress.CurrentRate = float64(itemsRead) / elapsed
			}
			options.ProgressHandler(progress)
		}
	}

	d.logger.Debug("scan complete",
		zap.String("table", table),
		zap.Int64("items", itemsRead),
		zap.Int("pages", pagesRead),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return results, nil
}
