package domain

import "errors"

// Error taxonomy for the money-movement core.
//
// ErrDivisionByZero and ErrMissingBucketRule indicate programming or upstream
// configuration bugs and are never recovered locally. ErrPermissionDenied is
// recoverable: callers surface it as an authorization failure, they do not
// retry. A gate that was never seen is not an error; unseen gates default
// to OPEN.
var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrMissingBucketRule = errors.New("missing bucket rule")
	ErrPermissionDenied  = errors.New("permission denied")
)
