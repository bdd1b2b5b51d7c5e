package constants

const (
	AppName            = "gramorx"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/gramorx/gramorx.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ISOFormat is the timestamp format plan days carry (midnight UTC)
	ISOFormat = "2006-01-02T15:04:05.000Z"
)

// Plan generation bounds.
const (
	MinSlotMinutes = 15
	MaxSlotMinutes = 240

	MinTargetBand = 4.0
	MaxTargetBand = 9.0

	MaxWeaknesses = 16

	// MinPracticeFloor is the least practice time a mock reservation may
	// squeeze a day down to.
	MinPracticeFloor = 25

	MaxPlanWeeks = 12
)
