package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// Login authenticates, decodes the access token claims locally and persists
// the session so subsequent requests pick it up.
type Login struct {
	api     port.AccountAPIPort
	decoder port.TokenDecoderPort
	session port.SessionStorePort
	logger  port.LoggerPort
}

func NewLogin(api port.AccountAPIPort, decoder port.TokenDecoderPort, session port.SessionStorePort, logger port.LoggerPort) *Login {
	return &Login{
		api:     api,
		decoder: decoder,
		session: session,
		logger:  logger.WithFields(port.Fields{"component": "LoginUseCase"}),
	}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (domain.Session, error) {
	session, err := uc.api.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	claims, err := uc.decoder.DecodeClaims(session.AccessToken)
	if err != nil {
		// The token still authenticates requests; only the locally cached
		// identity is unavailable.
		uc.logger.Warn("Failed to decode access token claims", port.Fields{"error": err.Error()})
	} else {
		session.Claims = claims
	}

	if err := uc.session.Save(session); err != nil {
		return domain.Session{}, err
	}
	uc.logger.Info("Logged in", port.Fields{"user_id": session.Claims.UserID})
	return session, nil
}
