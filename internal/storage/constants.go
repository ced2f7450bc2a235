package storage

// Backend names accepted by STORAGE_BACKEND
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// File store settings
const (
	FileExtension   = ".json"
	DirPermissions  = 0o755
	FilePermissions = 0o644
	tempFilePattern = ".save-*"
)

// Error messages
const (
	ErrMsgCreateDirFailed = "failed to create save directory"
	ErrMsgReadFailed      = "failed to read save file"
	ErrMsgWriteFailed     = "failed to write save file"
	ErrMsgEmptyKey        = "save key must not be empty"
)
