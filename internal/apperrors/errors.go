package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrRetryable indicates a transient storage conflict (deadlock or
// serialization failure). The caller layer owns the retry loop; the core
// itself never retries.
var ErrRetryable = errors.New("transient storage conflict")
