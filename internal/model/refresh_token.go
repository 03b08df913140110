package model

import "time"

// RefreshToken is refresh token model entity
type RefreshToken struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"userId"`
	Fingerprint string    `bson:"fingerprint"`
	ExpiresIn   int       `bson:"expiresIn"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// IsExpired checks if token is expired at the moment
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second).Before(now)
}
