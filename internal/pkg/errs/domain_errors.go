package errs

// Sentinels shared across usecase and handler layers
var (
	// Draft errors
	ErrDraftNotFound = New("draft not found")

	// Gateway errors
	ErrGatewayUnavailable   = New("payment gateway unavailable")
	ErrGatewayNotConfigured = New("payment gateway not configured")

	// Store errors
	ErrStoreOperationFailed = New("draft store operation failed")

	// Idempotency errors
	ErrIdempotencyInProgress  = New("idempotent request in progress")
	ErrIdempotencyKeyReused   = New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed = New("idempotency check failed")
)
