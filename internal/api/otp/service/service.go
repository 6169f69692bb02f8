package otpService

import (
	"ZisionX/internal/api/otp"
	redisPkg "ZisionX/pkg/redis"
	whatsappPkg "ZisionX/pkg/whatsapp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IOTPService interface {
	SendOTP(ctx context.Context, req otp.SendOTPRequest) error
	ValidateOTP(ctx context.Context, req otp.ValidateOTPRequest) (otp.ValidateOTPResponse, error)
}

type otpService struct {
	log         *logrus.Logger
	redisServer redisPkg.IRedis
	whatsapp    whatsappPkg.IWhatsappSender
}

func New(
	log *logrus.Logger,
	redisServer redisPkg.IRedis,
	whatsapp whatsappPkg.IWhatsappSender,
) IOTPService {
	return &otpService{
		log:         log,
		redisServer: redisServer,
		whatsapp:    whatsapp,
	}
}
