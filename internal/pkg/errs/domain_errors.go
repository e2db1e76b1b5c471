package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Quote errors
	ErrEmptyPackageList = errors.New("no package ids supplied")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
