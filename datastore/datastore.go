/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/serviceroulette/storagemodels"
)

// Scanner reads every item of a table in one logical call.
type Scanner[T any] interface {
	Scan(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error)
}
