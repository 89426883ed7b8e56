/*
Package datastore defines the read interface between the handler and the
record store.

The main interface is Scanner[T], which returns every item of a table decoded
into T:

	type Scanner[T any] interface {
	    Scan(ctx context.Context, params *storagemodels.ScanParams, opts ...storagemodels.ScanOption) ([]T, error)
	}

Implementations:
  - ddb: DynamoDB implementation that follows the table's pages to the end
  - mock: In-memory implementation for testing

A Scanner either returns the complete table or an error; partial results are
never returned.
*/
package datastore
