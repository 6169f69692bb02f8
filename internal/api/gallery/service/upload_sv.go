package galleryService

import (
	"ZisionX/internal/api/gallery"
	contextPkg "ZisionX/pkg/context"
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// UploadPhoto stores the image under {eventCode}/{filename}, registers every
// face in it with the collection and persists one attribute record per face.
// A single failed record write is logged and skipped so the remaining faces
// of the image still get stored.
func (s *galleryService) UploadPhoto(ctx context.Context, req gallery.UploadPhotoRequest, file *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"error":      err.Error(),
		}).Warn("Rejected upload")
		return gallery.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to close uploaded file")
		}
	}()

	imageKey := fmt.Sprintf("%s/%s", req.EventCode, file.Filename)
	if err := s.s3Client.UploadObject(ctx, imageKey, src); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_key":  imageKey,
			"error":      err.Error(),
		}).Error("Failed to upload image to S3")
		return err
	}

	externalImageID := s.utils.ExternalImageID(file.Filename)
	records, err := s.rekognition.IndexFaces(ctx, imageKey, externalImageID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_key":  imageKey,
			"error":      err.Error(),
		}).Error("Failed to index faces")
		return err
	}

	for _, record := range records {
		if err := s.faceRepo.PutFace(ctx, record); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"face_id":    record.FaceID,
				"error":      err.Error(),
			}).Error("Failed to store face attributes, skipping face")
			continue
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"image_key":  imageKey,
		"face_count": len(records),
	}).Info("Image uploaded and faces indexed")

	return nil
}
