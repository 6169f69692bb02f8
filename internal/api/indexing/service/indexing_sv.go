package indexingService

import (
	"ZisionX/internal/api/indexing"
	contextPkg "ZisionX/pkg/context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IndexWorkers bounds the number of detection round-trips in flight.
const IndexWorkers = 10

// IndexEvent re-indexes every image stored under the event's prefix. Images
// are independent: a detection or store failure on one is logged, counted
// and skipped while the rest of the batch proceeds. A cancelled context
// stops dispatching new images.
func (s *indexingService) IndexEvent(ctx context.Context, eventCode string) (indexing.IndexReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	keys, err := s.s3Client.ListKeys(ctx, fmt.Sprintf("%s/", eventCode))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"event_code": eventCode,
			"error":      err.Error(),
		}).Error("Failed to list event images")
		return indexing.IndexReport{}, err
	}

	if len(keys) == 0 {
		return indexing.IndexReport{}, indexing.ErrNoImagesFound
	}

	var (
		wg      sync.WaitGroup
		indexed int64
		failed  int64
		faces   int64
	)
	sem := make(chan struct{}, IndexWorkers)

	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(key string) {
			defer wg.Done()
			defer func() { <-sem }()

			stored, err := s.indexImage(ctx, key)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"image_key":  key,
					"error":      err.Error(),
				}).Error("Failed to index image, skipping")
				atomic.AddInt64(&failed, 1)
				return
			}

			atomic.AddInt64(&indexed, 1)
			atomic.AddInt64(&faces, int64(stored))
		}(key)
	}
	wg.Wait()

	report := indexing.IndexReport{
		Images:      len(keys),
		Indexed:     int(atomic.LoadInt64(&indexed)),
		Failed:      int(atomic.LoadInt64(&failed)),
		FacesStored: int(atomic.LoadInt64(&faces)),
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"event_code":   eventCode,
		"images":       report.Images,
		"indexed":      report.Indexed,
		"failed":       report.Failed,
		"faces_stored": report.FacesStored,
	}).Info("Event indexing completed")

	return report, ctx.Err()
}

func (s *indexingService) indexImage(ctx context.Context, imageKey string) (int, error) {
	records, err := s.rekognition.IndexFaces(ctx, imageKey, s.utils.ExternalImageID(imageKey))
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, record := range records {
		if err := s.faceRepo.PutFace(ctx, record); err != nil {
			s.log.WithFields(logrus.Fields{
				"image_key": imageKey,
				"face_id":   record.FaceID,
				"error":     err.Error(),
			}).Error("Failed to store face attributes, skipping face")
			continue
		}
		stored++
	}

	return stored, nil
}
