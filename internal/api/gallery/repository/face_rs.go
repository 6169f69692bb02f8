package galleryRepository

import (
	"ZisionX/internal/api/gallery"
	"ZisionX/internal/entity"
	contextPkg "ZisionX/pkg/context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	deleteWorkers     = 10
	deleteAttempts    = 3
	deleteBaseBackoff = 100 * time.Millisecond
)

// PutFace writes a record under its composite key. Re-writing the same key
// overwrites; re-indexing produces new face IDs, so existing records are
// never mutated in place.
func (r *faceRepository) PutFace(c context.Context, record entity.FaceAttributeRecord) error {
	requestID := contextPkg.GetRequestID(c)

	emotions, err := json.Marshal(record.Emotions)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"face_id":    record.FaceID,
			"error":      err.Error(),
		}).Error("Failed to serialize emotions")
		return err
	}

	item := map[string]*dynamodb.AttributeValue{
		"FaceId":              {S: aws.String(record.FaceID)},
		"ExternalImageId":     {S: aws.String(record.ExternalImageID)},
		"S3Path":              {S: aws.String(record.S3Path)},
		"EyesOpen":            boolAttr(record.EyesOpen),
		"EyesOpenConfidence":  numberAttr(record.EyesOpenConfidence),
		"Smile":               boolAttr(record.Smile),
		"SmileConfidence":     numberAttr(record.SmileConfidence),
		"Emotions":            {S: aws.String(string(emotions))},
		"MouthOpen":           boolAttr(record.MouthOpen),
		"MouthOpenConfidence": numberAttr(record.MouthOpenConfidence),
		"AgeRangeLow":         {N: aws.String(strconv.Itoa(record.AgeRange.Low))},
		"AgeRangeHigh":        {N: aws.String(strconv.Itoa(record.AgeRange.High))},
		"Gender":              stringAttr(record.Gender),
		"GenderConfidence":    numberAttr(record.GenderConfidence),
	}

	_, err = r.db.PutItemWithContext(c, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"face_id":           record.FaceID,
			"external_image_id": record.ExternalImageID,
			"error":             err.Error(),
		}).Error("Failed to store face attributes")
		return err
	}

	return nil
}

func (r *faceRepository) GetFace(c context.Context, faceID, externalImageID string) (entity.FaceAttributeRecord, error) {
	requestID := contextPkg.GetRequestID(c)

	out, err := r.db.GetItemWithContext(c, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"FaceId":          {S: aws.String(faceID)},
			"ExternalImageId": {S: aws.String(externalImageID)},
		},
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"face_id":    faceID,
			"error":      err.Error(),
		}).Error("Failed to read face attributes")
		return entity.FaceAttributeRecord{}, err
	}

	if len(out.Item) == 0 {
		return entity.FaceAttributeRecord{}, gallery.ErrFaceNotFound
	}

	record := entity.FaceAttributeRecord{
		FaceID:              faceID,
		ExternalImageID:     externalImageID,
		S3Path:              aws.StringValue(attrString(out.Item["S3Path"])),
		EyesOpen:            attrBool(out.Item["EyesOpen"]),
		EyesOpenConfidence:  attrNumber(out.Item["EyesOpenConfidence"]),
		Smile:               attrBool(out.Item["Smile"]),
		SmileConfidence:     attrNumber(out.Item["SmileConfidence"]),
		MouthOpen:           attrBool(out.Item["MouthOpen"]),
		MouthOpenConfidence: attrNumber(out.Item["MouthOpenConfidence"]),
		AgeRange: entity.AgeRange{
			Low:  attrInt(out.Item["AgeRangeLow"]),
			High: attrInt(out.Item["AgeRangeHigh"]),
		},
		Gender:           attrString(out.Item["Gender"]),
		GenderConfidence: attrNumber(out.Item["GenderConfidence"]),
	}

	if av := out.Item["Emotions"]; av != nil && av.S != nil {
		if err := json.Unmarshal([]byte(aws.StringValue(av.S)), &record.Emotions); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"face_id":    faceID,
				"error":      err.Error(),
			}).Error("Failed to deserialize emotions")
			return entity.FaceAttributeRecord{}, err
		}
	}

	return record, nil
}

// DeleteAllFaces scans the table page by page and deletes every record
// through a bounded worker pool. Each item gets a fixed number of attempts
// with exponential backoff; items that still fail are logged and skipped, so
// the returned count may be lower than the table size.
func (r *faceRepository) DeleteAllFaces(c context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	var deleted int64
	var exclusiveStartKey map[string]*dynamodb.AttributeValue

	for {
		out, err := r.db.ScanWithContext(c, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: exclusiveStartKey,
		})
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to scan face attribute table")
			return int(atomic.LoadInt64(&deleted)), err
		}

		var wg sync.WaitGroup
		sem := make(chan struct{}, deleteWorkers)

		for _, item := range out.Items {
			if c.Err() != nil {
				break
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(item map[string]*dynamodb.AttributeValue) {
				defer wg.Done()
				defer func() { <-sem }()

				if r.deleteFaceItem(c, item) {
					atomic.AddInt64(&deleted, 1)
				}
			}(item)
		}
		wg.Wait()

		if c.Err() != nil {
			return int(atomic.LoadInt64(&deleted)), c.Err()
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		exclusiveStartKey = out.LastEvaluatedKey
	}

	return int(atomic.LoadInt64(&deleted)), nil
}

func (r *faceRepository) deleteFaceItem(c context.Context, item map[string]*dynamodb.AttributeValue) bool {
	faceID := aws.StringValue(attrString(item["FaceId"]))
	externalImageID := aws.StringValue(attrString(item["ExternalImageId"]))

	var lastErr error
	for attempt := 0; attempt < deleteAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(deleteBaseBackoff << (attempt - 1))
		}

		_, err := r.db.DeleteItemWithContext(c, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]*dynamodb.AttributeValue{
				"FaceId":          {S: aws.String(faceID)},
				"ExternalImageId": {S: aws.String(externalImageID)},
			},
		})
		if err == nil {
			return true
		}
		lastErr = err
	}

	r.log.WithFields(logrus.Fields{
		"face_id":           faceID,
		"external_image_id": externalImageID,
		"error":             lastErr.Error(),
	}).Error("Giving up on deleting face attribute item")

	return false
}

func boolAttr(v *bool) *dynamodb.AttributeValue {
	if v == nil {
		return &dynamodb.AttributeValue{NULL: aws.Bool(true)}
	}
	return &dynamodb.AttributeValue{BOOL: v}
}

func numberAttr(v *float64) *dynamodb.AttributeValue {
	if v == nil {
		return &dynamodb.AttributeValue{NULL: aws.Bool(true)}
	}
	return &dynamodb.AttributeValue{N: aws.String(strconv.FormatFloat(*v, 'f', -1, 64))}
}

func stringAttr(v *string) *dynamodb.AttributeValue {
	if v == nil {
		return &dynamodb.AttributeValue{NULL: aws.Bool(true)}
	}
	return &dynamodb.AttributeValue{S: v}
}

func attrBool(av *dynamodb.AttributeValue) *bool {
	if av == nil || av.BOOL == nil {
		return nil
	}
	return av.BOOL
}

func attrNumber(av *dynamodb.AttributeValue) *float64 {
	if av == nil || av.N == nil {
		return nil
	}

	f, err := strconv.ParseFloat(aws.StringValue(av.N), 64)
	if err != nil {
		return nil
	}
	return &f
}

func attrString(av *dynamodb.AttributeValue) *string {
	if av == nil || av.S == nil {
		return nil
	}
	return av.S
}

func attrInt(av *dynamodb.AttributeValue) int {
	if av == nil || av.N == nil {
		return 0
	}

	n, err := strconv.Atoi(aws.StringValue(av.N))
	if err != nil {
		return 0
	}
	return n
}
