package activity

import "time"

// Filter is a conjunctive predicate over activity logs. Nil fields impose no
// constraint; the zero value matches every log.
type Filter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Reviewed *bool
	Type     *LogType
}

func (f *Filter) IsEmpty() bool {
	return f == nil || (f.FromDate == nil && f.ToDate == nil && f.Reviewed == nil && f.Type == nil)
}

// Match applies the filter to a single log in memory. It mirrors the SQL
// built by the store and is used where rows are already loaded.
func (f *Filter) Match(l *ActivityLog) bool {
	if l == nil {
		return false
	}
	if f == nil {
		return true
	}
	if f.FromDate != nil && l.CreatedAt.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && l.CreatedAt.After(*f.ToDate) {
		return false
	}
	if f.Reviewed != nil && l.Reviewed != *f.Reviewed {
		return false
	}
	if f.Type != nil && l.Type != *f.Type {
		return false
	}
	return true
}
