package constants

import "time"

// SessionState represents the current screen of the TUI application
type SessionState int

// Severity is the level attached to a user-facing notification
type Severity string

const (
	AppName           = "daylearn"
	DefaultConfigPath = "~/.config/daylearn/daylearn.db"
	Version           = "v0.3.0"

	// Keyring constants
	KeyringService     = AppName
	KeyringSessionUser = "session-token"

	// Persistence keys. Per-user keys are formed as <prefix><userID>.
	CurrentDayKeyPrefix    = "currentDay_"
	LearningStatsKeyPrefix = "learningStats_"
	AccountKeyPrefix       = "account_"
	SigningKeyName         = "auth_signing_key"

	// Auth constants
	MinPasswordLength = 8
	SessionTTL        = 30 * 24 * time.Hour
	SigningKeyBytes   = 32

	// Quiz constants
	OptionsPerQuestion = 4
	QuotePromptRunes   = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daylearn-"
	BackupFileSuffix = ".db"

	// Log constants
	LogDirName     = "logs"
	LogFileName    = "daylearn.log"
	LogMaxSizeMB   = 10
	LogMaxBackups  = 3
	LogMaxAgeDays  = 28
	LogPrefix      = AppName
	LogFilePerm    = 0755
	ConfigDirPerm  = 0700
	StoreFilePerm  = 0600
	JSONStoreExt   = ".json"
	SQLiteDriver   = "sqlite"
	MigrationsRoot = "sqlite"

	// Notify constants
	NotificationDurationMs = 5000
	NotifierLockfileName   = "daylearn-notifier.lock"
	TrayAppIdentifier      = "com.julianstephens.daylearn"
	TrayExecutablePrefix   = "daylearn-tray"
	TraySecretHeader       = "X-Daylearn-Secret"

	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Session States
const (
	StateLoading SessionState = iota
	StateAuth
	StateBrowsing
	StateQuizzing
	StateComplete
	StateConfirmReset
)
