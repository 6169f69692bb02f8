package indexingService

import (
	galleryRepository "ZisionX/internal/api/gallery/repository"
	"ZisionX/internal/api/indexing"
	rekognitionPkg "ZisionX/pkg/rekognition"
	s3Pkg "ZisionX/pkg/s3"
	utilsPkg "ZisionX/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IIndexingService interface {
	IndexEvent(ctx context.Context, eventCode string) (indexing.IndexReport, error)
	ResetCollection(ctx context.Context) (indexing.ResetReport, error)
}

type indexingService struct {
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
) IIndexingService {
	return &indexingService{
		log:         log,
		faceRepo:    faceRepo,
		rekognition: rekognition,
		s3Client:    s3Client,
		utils:       utils,
	}
}
