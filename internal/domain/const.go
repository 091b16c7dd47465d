package domain

const (
	// Report limits
	MAX_RECENT_VALUES = 64
	MAX_BATCH_ENTRIES = 1000

	// MAX_SAFE_INTEGER bounds every signed number; canonical JSON encodes numbers as doubles
	MAX_SAFE_INTEGER = 1<<53 - 1

	// SIGNATURE_SIZE is the fixed r||s signature length stored on tokens
	SIGNATURE_SIZE = 64
)
