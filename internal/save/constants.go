package save

// CurrentVersion is the save record schema written by Encode.
// Records without a version field come from the browser build and are migrated on load.
const CurrentVersion = 1

// Record field names as they appear in the stored JSON
const (
	FieldVersion              = "version"
	FieldPoints               = "points"
	FieldPrestigePoints       = "prestigePoints"
	FieldClickValue           = "clickValue"
	FieldClickCooldown        = "clickCooldown"
	FieldCooldownUpgradeLevel = "cooldownUpgradeLevel"
	FieldButtonUpgradeLevel   = "buttonUpgradeLevel"
	FieldCooldownUpgradePrice = "cooldownUpgradePrice"
	FieldButtonUpgradePrice   = "buttonUpgradePrice"
	FieldPrestigeTree         = "prestigeTree"
)

// Custom validation tags
const (
	TagDecimalGTE       = "decimal_gte"
	TagDecimalMaxDigits = "decimal_maxdigits"
)

// Error message constants
const (
	ErrMsgUnparseableRecord  = "record is not a JSON object"
	ErrMsgUnsupportedVersion = "unsupported record version %d"
	ErrMsgBadVersion         = "record version is not an integer"
	ErrMsgEncodeFailed       = "failed to encode save record: %w"
)
