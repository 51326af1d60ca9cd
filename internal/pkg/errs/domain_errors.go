package errs

// Cross-cutting categories used by the usecase layer. Handlers map these to HTTP statuses;
// specific sentinels are Marked with one of them.
var (
	ErrNotFound     = New("not found")
	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")
	ErrConflict     = New("conflict")
	ErrValidation   = New("validation failed")

	// Idempotency errors
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyInProgress  = New("idempotency in progress")
	ErrIdempotencyMismatch    = New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed = New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
