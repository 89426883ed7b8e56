/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Record is one schema-free catalog entry as read from the store.
// The handler never inspects its fields.
type Record map[string]interface{}

// Collection is the full ordered set of records returned by one scan.
// Order is the store's natural iteration order.
type Collection []Record

// ScanParams defines parameters for a full-table DynamoDB Scan.
type ScanParams struct {
	// TableName is the DynamoDB table name. Empty means the store's configured table.
	TableName string
	// ConsistentRead requests strongly consistent reads for every page.
	ConsistentRead bool
}
