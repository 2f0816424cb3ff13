package models

import "time"

// AuditLogEntry records one state-changing request made by a signed-in user.
// Secrets in FormData are redacted before the entry is stored.
type AuditLogEntry struct {
	ID        int64     `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	UserID    int       `json:"user_id" db:"user_id"`
	Method    string    `json:"method" db:"method"`
	Path      string    `json:"path" db:"path"`
	FormData  string    `json:"form_data,omitempty" db:"form_data"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
}
