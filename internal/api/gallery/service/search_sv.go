package galleryService

import (
	"ZisionX/internal/api/gallery"
	contextPkg "ZisionX/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SearchBySelfie runs the probe image against the face collection and filters
// the ranked candidates down to best shots. No accepted match is a normal,
// successful result.
func (s *galleryService) SearchBySelfie(ctx context.Context, selfie []byte) ([]gallery.MatchDetail, error) {
	requestID := contextPkg.GetRequestID(ctx)

	candidates, err := s.rekognition.SearchFacesByImage(ctx, selfie, MaxSearchFaces, FaceMatchThreshold)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Face search failed")
		return nil, err
	}

	matches, err := s.filterMatches(ctx, candidates)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"candidates": len(candidates),
		"accepted":   len(matches),
	}).Info("Selfie search completed")

	return matches, nil
}
