package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrTokenGenerationFailed   = errors.New("token generation failed")
)
