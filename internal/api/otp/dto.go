package otp

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
}

type ValidateOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	OTP         string `json:"otp" validate:"required,len=4"`
}

type ValidateOTPResponse struct {
	AccessToken string `json:"access_token"`
	ExpiredAt   int64  `json:"expired_at"`
}
