package electra

import "errors"

// Error taxonomy. Every failure is local to one call and wraps one of
// these sentinels; callers match with errors.Is.
var (
	// ErrMalformedBinary reports SSZ input that does not match the
	// shape's field structure or the preset's capacities: short
	// buffers, over-capacity lists, trailing bytes.
	ErrMalformedBinary = errors.New("malformed ssz encoding")

	// ErrMalformedText reports JSON input with invalid syntax, a
	// missing data envelope, mistyped fields, or capacity violations.
	ErrMalformedText = errors.New("malformed json encoding")

	// ErrInvalidSignatureEncoding reports signature text that is not
	// valid hex.
	ErrInvalidSignatureEncoding = errors.New("invalid signature hex")

	// ErrInvalidSignatureLength reports a decoded signature whose byte
	// count is not the BLS signature size.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)
