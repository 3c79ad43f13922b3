package model

import "time"

// OtpValidityWindow is how long an issued code can be redeemed.
const OtpValidityWindow = 5 * time.Minute

// OtpCode is a single-use registration code sent to an email address.
// A code is redeemable iff is_used is false and expires_at is in the future.
type OtpCode struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsUsed    bool      `json:"isUsed"`
	CreatedAt time.Time `json:"createdAt"`
}
