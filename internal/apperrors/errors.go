package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrPersistenceRead indicates that stored data could not be read or did not
// match the expected collection shape. Callers recover from this locally by
// falling back to safe defaults; it must never surface to the end user.
var ErrPersistenceRead = errors.New("persistence read error")

// ErrPersistenceWrite indicates that a collection could not be written to the
// store. The effect of the operation that triggered the write is not committed.
var ErrPersistenceWrite = errors.New("persistence write error")
