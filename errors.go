package tex2txt

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNotFound reports a missing input or expression file. Errors wrapping
	// it also match fs.ErrNotExist.
	ErrNotFound = errors.New("file not found")

	ErrReadInput         = errors.New("failed to read input")
	ErrReadExpressions   = errors.New("failed to read expression list")
	ErrWriteOutput       = errors.New("failed to write output")
	ErrLineTooLong       = errors.New("line exceeds maximum length")
	ErrInvalidPolicy     = errors.New("invalid expression policy")
	ErrInvalidExpression = errors.New("invalid expression")
)
