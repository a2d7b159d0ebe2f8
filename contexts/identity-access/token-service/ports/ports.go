package ports

import "time"

type Clock interface {
	Now() time.Time
}

// Claims is the authenticated identity extracted from a verified credential.
// It is ephemeral, rebuilt on every request.
type Claims struct {
	Email    string
	IssuedAt time.Time
	ExpireAt time.Time
}

type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}
