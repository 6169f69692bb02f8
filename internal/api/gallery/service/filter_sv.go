package galleryService

import (
	"ZisionX/internal/api/gallery"
	"ZisionX/internal/entity"
	contextPkg "ZisionX/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Product constants of the best-shot filter. Similarity ranks candidates; the
// gates below decide which of them are flattering enough to show at all.
const (
	FaceMatchThreshold    = 90.0
	MaxSearchFaces        = 100
	EyesOpenMinConfidence = 98.0
	EmotionMinConfidence  = 80.0
	PresignTTL            = time.Hour
)

// AcceptedEmotions is the fixed set of expressions a match may show.
var AcceptedEmotions = map[string]struct{}{
	"CALM":  {},
	"HAPPY": {},
	"SAD":   {},
}

// filterMatches replays the acceptance gates over the provider's ranked
// candidates. Output order follows input order; candidates without a stored
// record are dropped silently. An empty result is a normal outcome.
func (s *galleryService) filterMatches(ctx context.Context, candidates []entity.SearchCandidate) ([]gallery.MatchDetail, error) {
	requestID := contextPkg.GetRequestID(ctx)
	matches := make([]gallery.MatchDetail, 0, len(candidates))

	for _, candidate := range candidates {
		record, err := s.faceRepo.GetFace(ctx, candidate.FaceID, candidate.ExternalImageID)
		if err != nil {
			if errors.Is(err, gallery.ErrFaceNotFound) {
				continue
			}
			return nil, err
		}

		if !passesEyesOpenGate(record) {
			continue
		}

		if !hasAcceptedEmotion(record.Emotions) {
			continue
		}

		presignedURL, err := s.s3Client.PresignURL(record.S3Path, PresignTTL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"s3_path":    record.S3Path,
				"error":      err.Error(),
			}).Error("Failed to presign matched image")
			return nil, err
		}

		matches = append(matches, makeMatchDetail(candidate, record, presignedURL))
	}

	return matches, nil
}

func passesEyesOpenGate(record entity.FaceAttributeRecord) bool {
	if record.EyesOpen == nil || !*record.EyesOpen {
		return false
	}
	if record.EyesOpenConfidence == nil || *record.EyesOpenConfidence < EyesOpenMinConfidence {
		return false
	}
	return true
}

func hasAcceptedEmotion(emotions []entity.Emotion) bool {
	for _, emotion := range emotions {
		if _, ok := AcceptedEmotions[emotion.Type]; ok && emotion.Confidence >= EmotionMinConfidence {
			return true
		}
	}
	return false
}

func makeMatchDetail(candidate entity.SearchCandidate, record entity.FaceAttributeRecord, presignedURL string) gallery.MatchDetail {
	return gallery.MatchDetail{
		FaceID:              candidate.FaceID,
		Similarity:          candidate.Similarity,
		ImageName:           candidate.ExternalImageID,
		PresignedURL:        presignedURL,
		EyesOpen:            record.EyesOpen,
		EyesOpenConfidence:  record.EyesOpenConfidence,
		Emotions:            record.Emotions,
		MouthOpen:           record.MouthOpen,
		MouthOpenConfidence: record.MouthOpenConfidence,
		AgeRange:            record.AgeRange,
		Gender:              record.Gender,
		GenderConfidence:    record.GenderConfidence,
	}
}
