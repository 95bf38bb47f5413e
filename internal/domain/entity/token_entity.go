package entity

import "time"

// AuthToken is the opaque bearer credential, one row per user.
// Tokens do not expire; a user's token is reused across logins.
type AuthToken struct {
	Key       string
	UserID    int64
	CreatedAt time.Time
}
