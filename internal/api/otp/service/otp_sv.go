package otpService

import (
	"ZisionX/internal/api/otp"
	contextPkg "ZisionX/pkg/context"
	jwtPkg "ZisionX/pkg/jwt"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	// TODO: replace the stub code with a real OTP generator once an SMS
	// provider account is provisioned.
	otpStubCode = "0000"

	otpTTL     = 5 * time.Minute
	sessionTTL = time.Hour
)

func otpKey(phoneNumber string) string {
	return fmt.Sprintf("otp:%s", phoneNumber)
}

func (s *otpService) SendOTP(ctx context.Context, req otp.SendOTPRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.redisServer.SetOTP(ctx, otpKey(req.PhoneNumber), otpStubCode, otpTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP")
		return err
	}

	s.deliverOTP(ctx, requestID, req.PhoneNumber)

	return nil
}

// deliverOTP pushes the code over WhatsApp when a sender is connected.
// Delivery is best effort, the code is already in Redis either way.
func (s *otpService) deliverOTP(ctx context.Context, requestID, phoneNumber string) {
	if s.whatsapp == nil || !s.whatsapp.IsConnected() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("WhatsApp sender unavailable, skipping OTP delivery")
		return
	}

	message := fmt.Sprintf("Your ZisionX verification code is %s. It expires in %d minutes.",
		otpStubCode, int(otpTTL.Minutes()))

	if err := s.whatsapp.SendMessage(ctx, phoneNumber, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to deliver OTP over WhatsApp")
	}
}

func (s *otpService) ValidateOTP(ctx context.Context, req otp.ValidateOTPRequest) (otp.ValidateOTPResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	stored, err := s.redisServer.GetOTP(ctx, otpKey(req.PhoneNumber))
	if errors.Is(err, redis.Nil) {
		return otp.ValidateOTPResponse{}, otp.ErrOTPNotFound
	} else if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read OTP")
		return otp.ValidateOTPResponse{}, err
	}

	if stored != req.OTP {
		return otp.ValidateOTPResponse{}, otp.ErrInvalidOTP
	}

	accessToken, expiredAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":           req.PhoneNumber,
		"phone_number": req.PhoneNumber,
	}, sessionTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign session token")
		return otp.ValidateOTPResponse{}, err
	}

	if err := s.redisServer.DeleteOTP(ctx, otpKey(req.PhoneNumber)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete consumed OTP")
	}

	return otp.ValidateOTPResponse{
		AccessToken: accessToken,
		ExpiredAt:   expiredAt,
	}, nil
}
