package gallery

import "ZisionX/internal/entity"

type UploadPhotoRequest struct {
	EventCode string `json:"eventcode" form:"eventcode" validate:"required,min=4,max=32"`
}

type UploadPhotoResponse struct {
	Message string `json:"message"`
}

// MatchDetail is one accepted search match: the candidate's similarity joined
// with the stored attribute record and a fresh time-limited image locator.
type MatchDetail struct {
	FaceID              string           `json:"face_id"`
	Similarity          float64          `json:"similarity"`
	ImageName           string           `json:"image_name"`
	PresignedURL        string           `json:"presigned_url"`
	EyesOpen            *bool            `json:"eyes_open"`
	EyesOpenConfidence  *float64         `json:"eyes_open_confidence"`
	Emotions            []entity.Emotion `json:"emotions"`
	MouthOpen           *bool            `json:"mouth_open"`
	MouthOpenConfidence *float64         `json:"mouth_open_confidence"`
	AgeRange            entity.AgeRange  `json:"age_range"`
	Gender              *string          `json:"gender"`
	GenderConfidence    *float64         `json:"gender_confidence"`
}

type SearchResponse struct {
	Matches []MatchDetail `json:"matches"`
}
