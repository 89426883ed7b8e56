/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanOptions configures how a scan walks the store's pages
type ScanOptions struct {
	PageSize        int32              // Items per DynamoDB page (default: 0, store decides)
	ProgressHandler func(ScanProgress) // Optional progress callback, called after each page
}

// ScanProgress tracks scan progress
type ScanProgress struct {
	ItemsRead   int64                           // Total items read
	PagesRead   int                             // Total pages read
	LastKey     map[string]types.AttributeValue // Last evaluated key, nil once the table is exhausted
	StartTime   time.Time                       // When the scan started
	CurrentRate float64                         // Items per second
}

// ScanOption is a functional option for configuring scans
type ScanOption func(*ScanOptions)

// DefaultScanOptions returns default scan options
func DefaultScanOptions() ScanOptions {
	return ScanOptions{}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) ScanOption {
	return func(opts *ScanOptions) {
		opts.PageSize = size
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(ScanProgress)) ScanOption {
	return func(opts *ScanOptions) {
		opts.ProgressHandler = handler
	}
}
