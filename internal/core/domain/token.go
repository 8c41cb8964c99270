package domain

import "time"

// Claims is the identity carried by a bearer token. The token is never stored
// server-side; it becomes invalid only through expiry or a signature mismatch.
type Claims struct {
	UserID    string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
