package port

import "skidmo-client/internal/core/domain"

// SessionStorePort holds the process-wide session: cached in memory after the
// first read and mirrored to persistent storage on every change.
type SessionStorePort interface {
	Current() domain.Session
	Save(s domain.Session) error
	Clear() error
}
