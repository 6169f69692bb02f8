package indexingService

import (
	"ZisionX/internal/api/indexing"
	contextPkg "ZisionX/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ResetCollection empties the face collection and then the attribute store.
// The two deletions share no transaction: a failure on either side is logged
// and the reset still reports the counts it achieved. Callers needing a
// strict guarantee must verify emptiness themselves.
func (s *indexingService) ResetCollection(ctx context.Context) (indexing.ResetReport, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var report indexing.ResetReport

	faceIDs, err := s.rekognition.ListFaceIDs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list collection faces, continuing with store reset")
	} else if len(faceIDs) > 0 {
		deleted, err := s.rekognition.DeleteFaces(ctx, faceIDs)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to delete collection faces, continuing with store reset")
		}
		report.FacesDeleted = deleted
	}

	recordsDeleted, err := s.faceRepo.DeleteAllFaces(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Attribute store reset did not complete")
	}
	report.RecordsDeleted = recordsDeleted

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"faces_deleted":   report.FacesDeleted,
		"records_deleted": report.RecordsDeleted,
	}).Info("Collection reset completed")

	return report, nil
}
