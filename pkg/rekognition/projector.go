package rekognition

import (
	"ZisionX/internal/entity"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rekognition"
)

// ProjectFaceRecord flattens a raw per-face detection result into the
// normalized attribute record. Absent sub-objects stay nil so readers can
// tell "not detected" from "detected false"; the emotion list is passed
// through in provider order without filtering.
func ProjectFaceRecord(faceID, externalImageID, imagePath string, detail *rekognition.FaceDetail) entity.FaceAttributeRecord {
	record := entity.FaceAttributeRecord{
		FaceID:          faceID,
		ExternalImageID: externalImageID,
		S3Path:          imagePath,
	}

	if detail == nil {
		return record
	}

	if detail.EyesOpen != nil {
		record.EyesOpen = detail.EyesOpen.Value
		record.EyesOpenConfidence = detail.EyesOpen.Confidence
	}

	if detail.Smile != nil {
		record.Smile = detail.Smile.Value
		record.SmileConfidence = detail.Smile.Confidence
	}

	if detail.MouthOpen != nil {
		record.MouthOpen = detail.MouthOpen.Value
		record.MouthOpenConfidence = detail.MouthOpen.Confidence
	}

	for _, emotion := range detail.Emotions {
		record.Emotions = append(record.Emotions, entity.Emotion{
			Type:       aws.StringValue(emotion.Type),
			Confidence: aws.Float64Value(emotion.Confidence),
		})
	}

	if detail.AgeRange != nil {
		record.AgeRange = entity.AgeRange{
			Low:  int(aws.Int64Value(detail.AgeRange.Low)),
			High: int(aws.Int64Value(detail.AgeRange.High)),
		}
	}

	if detail.Gender != nil {
		record.Gender = detail.Gender.Value
		record.GenderConfidence = detail.Gender.Confidence
	}

	return record
}
