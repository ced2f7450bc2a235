package postgres

// Error messages
const (
	ErrMsgGetSaveFailed = "failed to load save record %q: %w"
	ErrMsgPutSaveFailed = "failed to store save record %q: %w"
)
