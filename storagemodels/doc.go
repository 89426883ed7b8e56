/*
Package storagemodels defines the data structures shared by the store adapters
and the handler.

Key Types:

Record and Collection:
A Record is a schema-free map of attribute names to values. A Collection is
every Record returned by one scan, in the store's iteration order.

ScanParams:
Parameters for a full-table scan:

	params := &ScanParams{
	    TableName:      "Project-ServiceCatalog",
	    ConsistentRead: true,
	}

ScanOptions:
Configuration for how the scan walks pages:

	opts := []ScanOption{
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
