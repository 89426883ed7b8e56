/*
Package errors provides semantic error types for Service Roulette.

The package defines the error scenarios of the handler with specific types
that can be checked using the standard errors.Is() function or the provided
helper functions.

Common Errors:

	var (
	    ErrStoreRead       = errors.New("store read failed")
	    ErrEmptyCollection = errors.New("collection is empty")
	    ErrInvalidInput    = errors.New("invalid input")
	)

Usage:

	records, err := store.Scan(ctx, params)
	if err != nil {
	    if errors.IsStoreRead(err) {
	        // items were read but could not be decoded
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewStoreReadError("Project-ServiceCatalog", cause)
	err := errors.NewValidationError("region", "must not be empty")

Failed DynamoDB requests are not wrapped: the store returns the SDK error
itself so it reaches the Lambda runtime unchanged. StoreReadError carries
the failures that have no SDK error of their own, such as an undecodable item.
*/
package errors
