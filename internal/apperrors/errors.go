package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrVaultNotConfigured indicates that no vault path has been configured.
// Every store operation must fail fast on this before touching the filesystem.
var ErrVaultNotConfigured = errors.New("vault path not configured")
