package activity

// LogType tags an ActivityLog with the detail table that owns its payload.
type LogType string

const (
	LogTypeManual         LogType = "manual"
	LogTypeGitCommit      LogType = "git_commit"
	LogTypeClaudeCode     LogType = "claude_code"
	LogTypeGitCheckout    LogType = "git_checkout"
	LogTypeGitHookInstall LogType = "git_hook_install"
)

// LogTypes lists every variant tag in declaration order.
var LogTypes = []LogType{
	LogTypeManual,
	LogTypeGitCommit,
	LogTypeClaudeCode,
	LogTypeGitCheckout,
	LogTypeGitHookInstall,
}

func (t LogType) Valid() bool {
	switch t {
	case LogTypeManual, LogTypeGitCommit, LogTypeClaudeCode, LogTypeGitCheckout, LogTypeGitHookInstall:
		return true
	default:
		return false
	}
}

// Mutable reports whether logs of this type may be edited or deleted through the API.
// Everything except manual entries is an immutable ingestion record.
func (t LogType) Mutable() bool { return t == LogTypeManual }

func (t LogType) String() string { return string(t) }
