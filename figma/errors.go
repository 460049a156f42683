package figma

import "errors"

// Classification errors for remote and parse failures. Call sites wrap them
// with details, callers test with errors.Is.
var (
	ErrAuthenticationRequired = errors.New("figma authentication failed")
	ErrRemoteFetchFailed      = errors.New("figma request failed")
	ErrInvalidDocumentShape   = errors.New("unexpected document shape")
)
