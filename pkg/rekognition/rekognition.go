package rekognition

import (
	"ZisionX/internal/entity"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"
)

// DeleteFaces accepts at most this many IDs per call.
const deleteFacesBatchSize = 1000

type ItfRekognition interface {
	IndexFaces(ctx context.Context, imageKey, externalImageID string) ([]entity.FaceAttributeRecord, error)
	SearchFacesByImage(ctx context.Context, image []byte, maxFaces int64, similarityThreshold float64) ([]entity.SearchCandidate, error)
	ListFaceIDs(ctx context.Context) ([]string, error)
	DeleteFaces(ctx context.Context, faceIDs []string) (int, error)
}

type rekognitionClient struct {
	client       *rekognition.Rekognition
	collectionID string
	bucketName   string
}

func New() (ItfRekognition, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &rekognitionClient{
		client:       rekognition.New(sess),
		collectionID: os.Getenv("COLLECTION_ID"),
		bucketName:   os.Getenv("AWS_BUCKET_NAME"),
	}, nil
}

// IndexFaces registers every face found in the stored image with the
// collection and returns one projected attribute record per face instance.
func (r *rekognitionClient) IndexFaces(ctx context.Context, imageKey, externalImageID string) ([]entity.FaceAttributeRecord, error) {
	out, err := r.client.IndexFacesWithContext(ctx, &rekognition.IndexFacesInput{
		CollectionId: aws.String(r.collectionID),
		Image: &rekognition.Image{
			S3Object: &rekognition.S3Object{
				Bucket: aws.String(r.bucketName),
				Name:   aws.String(imageKey),
			},
		},
		ExternalImageId:     aws.String(externalImageID),
		DetectionAttributes: aws.StringSlice([]string{rekognition.AttributeAll}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index faces in %s: %w", imageKey, err)
	}

	records := make([]entity.FaceAttributeRecord, 0, len(out.FaceRecords))
	for _, faceRecord := range out.FaceRecords {
		if faceRecord.Face == nil {
			continue
		}

		records = append(records, ProjectFaceRecord(
			aws.StringValue(faceRecord.Face.FaceId),
			aws.StringValue(faceRecord.Face.ExternalImageId),
			imageKey,
			faceRecord.FaceDetail,
		))
	}

	return records, nil
}

func (r *rekognitionClient) SearchFacesByImage(ctx context.Context, image []byte, maxFaces int64, similarityThreshold float64) ([]entity.SearchCandidate, error) {
	out, err := r.client.SearchFacesByImageWithContext(ctx, &rekognition.SearchFacesByImageInput{
		CollectionId:       aws.String(r.collectionID),
		Image:              &rekognition.Image{Bytes: image},
		MaxFaces:           aws.Int64(maxFaces),
		FaceMatchThreshold: aws.Float64(similarityThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search faces: %w", err)
	}

	candidates := make([]entity.SearchCandidate, 0, len(out.FaceMatches))
	for _, match := range out.FaceMatches {
		if match.Face == nil {
			continue
		}

		candidates = append(candidates, entity.SearchCandidate{
			FaceID:          aws.StringValue(match.Face.FaceId),
			ExternalImageID: aws.StringValue(match.Face.ExternalImageId),
			Similarity:      aws.Float64Value(match.Similarity),
		})
	}

	return candidates, nil
}

func (r *rekognitionClient) ListFaceIDs(ctx context.Context) ([]string, error) {
	var faceIDs []string
	var nextToken *string

	for {
		out, err := r.client.ListFacesWithContext(ctx, &rekognition.ListFacesInput{
			CollectionId: aws.String(r.collectionID),
			NextToken:    nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list faces: %w", err)
		}

		for _, face := range out.Faces {
			faceIDs = append(faceIDs, aws.StringValue(face.FaceId))
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return faceIDs, nil
}

func (r *rekognitionClient) DeleteFaces(ctx context.Context, faceIDs []string) (int, error) {
	deleted := 0

	for start := 0; start < len(faceIDs); start += deleteFacesBatchSize {
		end := start + deleteFacesBatchSize
		if end > len(faceIDs) {
			end = len(faceIDs)
		}

		out, err := r.client.DeleteFacesWithContext(ctx, &rekognition.DeleteFacesInput{
			CollectionId: aws.String(r.collectionID),
			FaceIds:      aws.StringSlice(faceIDs[start:end]),
		})
		if err != nil {
			return deleted, fmt.Errorf("failed to delete faces: %w", err)
		}

		deleted += len(out.DeletedFaces)
	}

	return deleted, nil
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}
