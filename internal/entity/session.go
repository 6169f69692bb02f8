package entity

// SessionData is the identity carried by an access token issued after OTP
// validation.
type SessionData struct {
	ID          string
	PhoneNumber string
}
