/*
Package errors provides semantic error types for relstore.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("entity not found")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrPrecondition = errors.New("precondition violation")
	    ErrUnknownType  = errors.New("unknown entity type")
	)

A PreconditionError is a programming error: a base save strategy was handed a
related model that was never persisted. It never matches ErrNotFound, so
callers can crash on it while still handling missing records gracefully.

Usage:

	host, err := storage.Get(ctx, models.HostType, 42)
	if err != nil {
	    if errors.IsNotFound(err) {
	        return nil, fmt.Errorf("host %d does not exist", 42)
	    }
	    return nil, err
	}
*/
package errors
