/*
Package ddb provides a DynamoDB implementation of the datastore.Scanner interface.

The DynamodbDataStore supports:
  - Full-table scans that follow LastEvaluatedKey across pages
  - Generic decoding of items into any T (schema-free maps or typed structs)
  - Optional strongly consistent reads and page size limits
  - Per-page progress reporting
  - Endpoint overrides for DynamoDB Local

Retries:
The client built by NewDynamoDBClient uses aws.NopRetryer. A throttled or
failed page fails the whole scan with the SDK error, unwrapped, so the Lambda
runtime reports the DynamoDB error type and message. Items that cannot be
decoded into T fail the scan with a *errors.StoreReadError.

Progress:

	records, err := store.Scan(ctx, &storagemodels.ScanParams{},
	    storagemodels.WithPageSize(25),
	    storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
	        log.Printf("read %d items in %d pages", p.ItemsRead, p.PagesRead)
	    }),
	)
*/
package ddb
