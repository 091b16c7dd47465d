package constants

const (
	MAX_PAGE_SIZE              = 500
	DEFAULT_OFFSET             = 0
	DEFAULT_TRANSACTIONS_LIMIT = 100
	MAX_EXTERNAL_UID_LENGTH    = 128
	MAX_DEVICE_UID_LENGTH      = 128
)
