package port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

// AccountAPIPort covers the user auth endpoints. Login returns the raw token
// pair; decoding claims and persisting the session is the login use case's
// job.
type AccountAPIPort interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
}
