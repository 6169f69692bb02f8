package galleryService

import (
	"ZisionX/internal/api/gallery"
	galleryRepository "ZisionX/internal/api/gallery/repository"
	rekognitionPkg "ZisionX/pkg/rekognition"
	s3Pkg "ZisionX/pkg/s3"
	utilsPkg "ZisionX/pkg/utils"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IGalleryService interface {
	UploadPhoto(ctx context.Context, req gallery.UploadPhotoRequest, file *multipart.FileHeader) error
	SearchBySelfie(ctx context.Context, selfie []byte) ([]gallery.MatchDetail, error)
}

type galleryService struct {
	log         *logrus.Logger
	faceRepo    galleryRepository.Repository
	rekognition rekognitionPkg.ItfRekognition
	s3Client    s3Pkg.ItfS3
	utils       utilsPkg.IUtils
}

func New(
	log *logrus.Logger,
	faceRepo galleryRepository.Repository,
	rekognition rekognitionPkg.ItfRekognition,
	s3Client s3Pkg.ItfS3,
	utils utilsPkg.IUtils,
) IGalleryService {
	return &galleryService{
		log:         log,
		faceRepo:    faceRepo,
		rekognition: rekognition,
		s3Client:    s3Client,
		utils:       utils,
	}
}
