package printingService

import (
	"ZisionX/internal/api/printing"
	printingRepository "ZisionX/internal/api/printing/repository"
	s3Pkg "ZisionX/pkg/s3"
	smtpPkg "ZisionX/pkg/smtp"
	utilsPkg "ZisionX/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPrintingService interface {
	RequestPrint(ctx context.Context, req printing.PrintRequest) (printing.PrintResponse, error)
}

type printingService struct {
	log        *logrus.Logger
	repo       printingRepository.Repository
	s3Client   s3Pkg.ItfS3
	smtpMailer smtpPkg.ItfSmtp
	utils      utilsPkg.IUtils
}

func New(
	log *logrus.Logger,
	repo printingRepository.Repository,
	s3Client s3Pkg.ItfS3,
	smtpMailer smtpPkg.ItfSmtp,
	utils utilsPkg.IUtils,
) IPrintingService {
	return &printingService{
		log:        log,
		repo:       repo,
		s3Client:   s3Client,
		smtpMailer: smtpMailer,
		utils:      utils,
	}
}
