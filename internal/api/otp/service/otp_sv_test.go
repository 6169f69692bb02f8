package otpService

import (
	"ZisionX/internal/api/otp"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeRedis struct {
	codes   map[string]string
	setErr  error
	deleted []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{codes: make(map[string]string)}
}

func (f *fakeRedis) SetOTP(_ context.Context, key, code string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.codes[key] = code
	return nil
}

func (f *fakeRedis) GetOTP(_ context.Context, key string) (string, error) {
	code, ok := f.codes[key]
	if !ok {
		return "", redis.Nil
	}
	return code, nil
}

func (f *fakeRedis) DeleteOTP(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.codes, key)
	return nil
}

func newTestService(r *fakeRedis) *otpService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &otpService{
		log:         logger,
		redisServer: r,
	}
}

func TestSendOTPStoresCode(t *testing.T) {
	r := newFakeRedis()
	svc := newTestService(r)

	err := svc.SendOTP(context.Background(), otp.SendOTPRequest{PhoneNumber: "628123456789"})
	if err != nil {
		t.Fatalf("SendOTP failed: %v", err)
	}

	if got := r.codes["otp:628123456789"]; got != otpStubCode {
		t.Fatalf("stored code: got %q, want %q", got, otpStubCode)
	}
}

func TestSendOTPPropagatesStoreError(t *testing.T) {
	r := newFakeRedis()
	r.setErr = errors.New("redis down")
	svc := newTestService(r)

	err := svc.SendOTP(context.Background(), otp.SendOTPRequest{PhoneNumber: "628123456789"})
	if !errors.Is(err, r.setErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestValidateOTPMissing(t *testing.T) {
	svc := newTestService(newFakeRedis())

	_, err := svc.ValidateOTP(context.Background(), otp.ValidateOTPRequest{
		PhoneNumber: "628123456789",
		OTP:         "0000",
	})
	if !errors.Is(err, otp.ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound, got %v", err)
	}
}

func TestValidateOTPWrongCode(t *testing.T) {
	r := newFakeRedis()
	r.codes["otp:628123456789"] = otpStubCode
	svc := newTestService(r)

	_, err := svc.ValidateOTP(context.Background(), otp.ValidateOTPRequest{
		PhoneNumber: "628123456789",
		OTP:         "9999",
	})
	if !errors.Is(err, otp.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
	if len(r.deleted) != 0 {
		t.Error("a rejected OTP must not be consumed")
	}
}

func TestValidateOTPSuccessIssuesTokenAndConsumesCode(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	r := newFakeRedis()
	r.codes["otp:628123456789"] = otpStubCode
	svc := newTestService(r)

	resp, err := svc.ValidateOTP(context.Background(), otp.ValidateOTPRequest{
		PhoneNumber: "628123456789",
		OTP:         otpStubCode,
	})
	if err != nil {
		t.Fatalf("ValidateOTP failed: %v", err)
	}

	if resp.AccessToken == "" {
		t.Error("expected a signed access token")
	}
	if resp.ExpiredAt <= time.Now().Unix() {
		t.Errorf("expected a future expiry, got %d", resp.ExpiredAt)
	}
	if len(r.deleted) != 1 || r.deleted[0] != "otp:628123456789" {
		t.Errorf("expected consumed OTP to be deleted, got %v", r.deleted)
	}
}
