package activity

// Details is the type-specific payload of an ActivityLog. The set of
// implementations is closed: ManualLog, GitCommit, Conversation, GitCheckout
// and GitHookInstall, one per LogType.
type Details interface {
	LogType() LogType
	isDetails()
}

// Entry is an ActivityLog paired with its detail record. Details is nil when
// the detail row was not loaded or does not exist; when set, its LogType
// always equals Log.Type.
type Entry struct {
	Log     *ActivityLog
	Details Details
}

// Manual returns the manual detail when the entry carries one.
func (e *Entry) Manual() (*ManualLog, bool) {
	if e == nil || e.Details == nil {
		return nil, false
	}
	m, ok := e.Details.(*ManualLog)
	return m, ok && m != nil
}

// Matches reports whether d may be attached to a log of type t.
func Matches(t LogType, d Details) bool {
	if d == nil {
		return true
	}
	return d.LogType() == t
}
