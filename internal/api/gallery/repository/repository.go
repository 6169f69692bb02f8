package galleryRepository

import (
	"ZisionX/internal/entity"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Repository is the attribute store keyed by the composite
// (FaceId, ExternalImageId) identity.
type Repository interface {
	PutFace(ctx context.Context, record entity.FaceAttributeRecord) error
	GetFace(ctx context.Context, faceID, externalImageID string) (entity.FaceAttributeRecord, error)
	DeleteAllFaces(ctx context.Context) (int, error)
}

func New(db dynamodbiface.DynamoDBAPI, tableName string, log *logrus.Logger) Repository {
	return &faceRepository{
		db:        db,
		tableName: tableName,
		log:       log,
	}
}

type faceRepository struct {
	db        dynamodbiface.DynamoDBAPI
	tableName string
	log       *logrus.Logger
}
