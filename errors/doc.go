/*
Package errors provides semantic error types for the RegistryStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidIdentifier = errors.New("invalid identifier")
	    ErrAlreadyRegistered = errors.New("registration already exists")
	    ErrNotFound          = errors.New("registry entry not found")
	    ErrUnknownFormat     = errors.New("no decoder registered for format")
	)

Usage:

	// Check error type
	rawID, err := builder.Register(block, id)
	if err != nil {
	    if errors.IsAlreadyRegistered(err) {
	        // Another entry already claimed this identifier
	        return fmt.Errorf("block %s defined twice", id)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewInvalidIdentifierError("My:Thing", "uppercase characters")
	err := errors.NewAlreadyRegisteredError("default:stone")
	err := errors.NewNotFoundError("registry", "default:blocks")

Only recoverable conditions are modeled as errors. Contract violations
(freezing twice, reading an unsealed value, asking for a default entry
that does not exist) panic instead; they indicate a bug in the calling
code, not a condition to handle.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
