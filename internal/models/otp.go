package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTPValidity is how long a one-time passcode stays usable.
const OTPValidity = 5 * time.Minute

// OTP is an emailed one-time passcode for signup verification and password
// reset. Deleted on successful verification; expiry is checked at read time.
type OTP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email"         json:"email"`
	Code      string             `bson:"otp"           json:"otp"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}

// Expired reports whether the passcode is past its validity window at the
// given instant. Exactly OTPValidity after creation still passes.
func (o OTP) Expired(now time.Time) bool {
	return now.After(o.CreatedAt.Add(OTPValidity))
}
