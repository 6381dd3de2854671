package docs

import "errors"

// Sentinel errors for the retrieval layer. The messages are client-facing
// and stable; handlers write them verbatim into responses.
var (
	ErrInvalidID = errors.New("Invalid document ID format")
	ErrNotFound  = errors.New("Document not found")
)
