package printingService

import (
	"ZisionX/internal/api/printing"
	"ZisionX/internal/entity"
	contextPkg "ZisionX/pkg/context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const printPresignTTL = time.Hour

// RequestPrint presigns the requested image, mails it to the print desk with
// the photo attached, and records the request for the organizer's audit. A
// failed audit write does not undo an email that already went out.
func (s *printingService) RequestPrint(ctx context.Context, req printing.PrintRequest) (printing.PrintResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	imageKey := fmt.Sprintf("%s/%s.JPG", req.EventCode, req.ImageName)

	imageBytes, err := s.s3Client.GetObject(ctx, imageKey)
	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) && awsErr.Code() == s3.ErrCodeNoSuchKey {
			return printing.PrintResponse{}, printing.ErrImageNotFound
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_key":  imageKey,
			"error":      err.Error(),
		}).Error("Failed to fetch image for printing")
		return printing.PrintResponse{}, err
	}

	presignedURL, err := s.s3Client.PresignURL(imageKey, printPresignTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_key":  imageKey,
			"error":      err.Error(),
		}).Error("Failed to presign image for printing")
		return printing.PrintResponse{}, err
	}

	if err := s.smtpMailer.SendPrintRequest(req.PhoneNumber, req.EventCode, req.ImageName, imageBytes); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_key":  imageKey,
			"error":      err.Error(),
		}).Error("Failed to email print request")
		return printing.PrintResponse{}, printing.ErrFailedToSend
	}

	if err := s.recordPrintRequest(ctx, req); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to record print request, email already sent")
	}

	return printing.PrintResponse{
		Message:      "Print request successful",
		PresignedURL: presignedURL,
	}, nil
}

func (s *printingService) recordPrintRequest(ctx context.Context, req printing.PrintRequest) error {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	return repo.PrintRequests.Create(ctx, entity.PrintRequest{
		ID:          id,
		PhoneNumber: req.PhoneNumber,
		EventCode:   req.EventCode,
		ImageName:   req.ImageName,
	})
}
