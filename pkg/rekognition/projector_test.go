package rekognition

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rekognition"
)

func TestProjectFaceRecordNilDetail(t *testing.T) {
	record := ProjectFaceRecord("face-1", "img-1", "event/img-1.jpg", nil)

	if record.FaceID != "face-1" || record.ExternalImageID != "img-1" || record.S3Path != "event/img-1.jpg" {
		t.Fatalf("identity fields not carried over: %+v", record)
	}
	if record.EyesOpen != nil || record.Smile != nil || record.MouthOpen != nil || record.Gender != nil {
		t.Errorf("expected nil attribute pointers for nil detail, got %+v", record)
	}
	if record.Emotions != nil {
		t.Errorf("expected nil emotions for nil detail, got %v", record.Emotions)
	}
	if record.AgeRange.Low != 0 || record.AgeRange.High != 0 {
		t.Errorf("expected zero age range, got %+v", record.AgeRange)
	}
}

func TestProjectFaceRecordPartialDetail(t *testing.T) {
	detail := &rekognition.FaceDetail{
		EyesOpen: &rekognition.EyeOpen{
			Value:      aws.Bool(true),
			Confidence: aws.Float64(99.1),
		},
	}

	record := ProjectFaceRecord("face-1", "img-1", "event/img-1.jpg", detail)

	if record.EyesOpen == nil || !*record.EyesOpen {
		t.Fatal("expected eyes open true")
	}
	if record.EyesOpenConfidence == nil || *record.EyesOpenConfidence != 99.1 {
		t.Fatalf("unexpected eyes open confidence: %v", record.EyesOpenConfidence)
	}

	// Sub-objects the provider omitted must stay nil, not zero.
	if record.Smile != nil || record.SmileConfidence != nil {
		t.Errorf("expected nil smile fields, got %v %v", record.Smile, record.SmileConfidence)
	}
	if record.MouthOpen != nil || record.Gender != nil || record.GenderConfidence != nil {
		t.Error("expected nil mouth and gender fields")
	}
}

func TestProjectFaceRecordFullDetail(t *testing.T) {
	detail := &rekognition.FaceDetail{
		EyesOpen: &rekognition.EyeOpen{
			Value:      aws.Bool(true),
			Confidence: aws.Float64(99.9),
		},
		Smile: &rekognition.Smile{
			Value:      aws.Bool(false),
			Confidence: aws.Float64(88.0),
		},
		MouthOpen: &rekognition.MouthOpen{
			Value:      aws.Bool(true),
			Confidence: aws.Float64(77.5),
		},
		Emotions: []*rekognition.Emotion{
			{Type: aws.String("HAPPY"), Confidence: aws.Float64(91.2)},
			{Type: aws.String("CALM"), Confidence: aws.Float64(5.1)},
			{Type: aws.String("ANGRY"), Confidence: aws.Float64(1.0)},
		},
		AgeRange: &rekognition.AgeRange{
			Low:  aws.Int64(24),
			High: aws.Int64(32),
		},
		Gender: &rekognition.Gender{
			Value:      aws.String("Female"),
			Confidence: aws.Float64(98.7),
		},
	}

	record := ProjectFaceRecord("face-2", "img-2", "event/img-2.jpg", detail)

	if len(record.Emotions) != 3 {
		t.Fatalf("expected 3 emotions, got %d", len(record.Emotions))
	}

	// Emotions must keep provider order.
	wantOrder := []string{"HAPPY", "CALM", "ANGRY"}
	for i, want := range wantOrder {
		if record.Emotions[i].Type != want {
			t.Errorf("emotion %d: got %s, want %s", i, record.Emotions[i].Type, want)
		}
	}

	if record.AgeRange.Low != 24 || record.AgeRange.High != 32 {
		t.Errorf("unexpected age range: %+v", record.AgeRange)
	}
	if record.Gender == nil || *record.Gender != "Female" {
		t.Errorf("unexpected gender: %v", record.Gender)
	}
	if record.Smile == nil || *record.Smile {
		t.Errorf("expected smile false, got %v", record.Smile)
	}
	if record.MouthOpenConfidence == nil || *record.MouthOpenConfidence != 77.5 {
		t.Errorf("unexpected mouth open confidence: %v", record.MouthOpenConfidence)
	}
}
