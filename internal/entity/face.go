package entity

// Emotion is one entry of the provider's per-face emotion ranking. JSON tags
// match the provider's casing so the stored form stays byte-compatible with
// what Rekognition returns.
type Emotion struct {
	Type       string  `json:"Type"`
	Confidence float64 `json:"Confidence"`
}

type AgeRange struct {
	Low  int `json:"Low"`
	High int `json:"High"`
}

// FaceAttributeRecord is the normalized attribute set of a single detected
// face instance. Pointer fields distinguish "not detected" from "detected
// false"; a record is written once at indexing time and never updated.
type FaceAttributeRecord struct {
	FaceID              string
	ExternalImageID     string
	S3Path              string
	EyesOpen            *bool
	EyesOpenConfidence  *float64
	Smile               *bool
	SmileConfidence     *float64
	Emotions            []Emotion
	MouthOpen           *bool
	MouthOpenConfidence *float64
	AgeRange            AgeRange
	Gender              *string
	GenderConfidence    *float64
}

// SearchCandidate is a ranked match returned by the face-search provider.
// The provider's ordering is authoritative and must be preserved downstream.
type SearchCandidate struct {
	FaceID          string
	ExternalImageID string
	Similarity      float64
}
