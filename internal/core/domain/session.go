package domain

// SessionClaims is what the client learns from the access token locally,
// without a server round-trip: who the user is and whether they are verified.
type SessionClaims struct {
	UserID     string
	Email      string
	IsVerified bool
}

// Session is the one piece of cross-screen state the client keeps: the token
// pair plus the locally decoded claims. It is held by an explicit store and
// injected into the API client; there is no ambient global token.
type Session struct {
	AccessToken  string
	RefreshToken string
	Claims       SessionClaims
}

// Authenticated reports whether an access token is present.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
