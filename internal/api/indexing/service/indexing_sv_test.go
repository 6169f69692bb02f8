package indexingService

import (
	"ZisionX/internal/api/indexing"
	"ZisionX/internal/entity"
	"errors"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeRekognition struct {
	mu sync.Mutex

	facesPerImage map[string][]entity.FaceAttributeRecord
	indexErrs     map[string]error

	faceIDs     []string
	listErr     error
	deleteErr   error
	deletedIDs  []string
	indexCalled []string
}

func (f *fakeRekognition) IndexFaces(_ context.Context, imageKey, _ string) ([]entity.FaceAttributeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.indexCalled = append(f.indexCalled, imageKey)
	if err := f.indexErrs[imageKey]; err != nil {
		return nil, err
	}
	return f.facesPerImage[imageKey], nil
}

func (f *fakeRekognition) SearchFacesByImage(_ context.Context, _ []byte, _ int64, _ float64) ([]entity.SearchCandidate, error) {
	return nil, nil
}

func (f *fakeRekognition) ListFaceIDs(_ context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.faceIDs, nil
}

func (f *fakeRekognition) DeleteFaces(_ context.Context, faceIDs []string) (int, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deletedIDs = faceIDs
	return len(faceIDs), nil
}

type fakeFaceRepo struct {
	mu      sync.Mutex
	stored  []entity.FaceAttributeRecord
	putErr  error
	deleted int
	delErr  error
}

func (f *fakeFaceRepo) PutFace(_ context.Context, record entity.FaceAttributeRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return f.putErr
	}
	f.stored = append(f.stored, record)
	return nil
}

func (f *fakeFaceRepo) GetFace(_ context.Context, _, _ string) (entity.FaceAttributeRecord, error) {
	return entity.FaceAttributeRecord{}, errors.New("not implemented")
}

func (f *fakeFaceRepo) DeleteAllFaces(_ context.Context) (int, error) {
	return f.deleted, f.delErr
}

type fakeS3 struct {
	keys    []string
	listErr error
}

func (f *fakeS3) UploadObject(_ context.Context, _ string, _ io.Reader) error { return nil }
func (f *fakeS3) GetObject(_ context.Context, _ string) ([]byte, error)       { return nil, nil }
func (f *fakeS3) PresignURL(_ string, _ time.Duration) (string, error)        { return "", nil }

func (f *fakeS3) ListKeys(_ context.Context, _ string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.keys, nil
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) { return "01TEST", nil }
func (fakeUtils) ValidateImageFile(_ *multipart.FileHeader) error  { return nil }
func (fakeUtils) ExternalImageID(filename string) string           { return filename }

func newTestService(repo *fakeFaceRepo, rek *fakeRekognition, s3 *fakeS3) *indexingService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &indexingService{
		log:         logger,
		faceRepo:    repo,
		rekognition: rek,
		s3Client:    s3,
		utils:       fakeUtils{},
	}
}

func faceRecord(faceID, imageKey string) entity.FaceAttributeRecord {
	return entity.FaceAttributeRecord{
		FaceID:          faceID,
		ExternalImageID: imageKey,
		S3Path:          imageKey,
	}
}

func TestIndexEventCountsFailuresWithoutAborting(t *testing.T) {
	rek := &fakeRekognition{
		facesPerImage: map[string][]entity.FaceAttributeRecord{
			"ev/a.jpg": {faceRecord("f1", "ev/a.jpg"), faceRecord("f2", "ev/a.jpg")},
			"ev/c.jpg": {faceRecord("f3", "ev/c.jpg")},
		},
		indexErrs: map[string]error{
			"ev/b.jpg": errors.New("detection failed"),
		},
	}
	repo := &fakeFaceRepo{}
	s3 := &fakeS3{keys: []string{"ev/a.jpg", "ev/b.jpg", "ev/c.jpg"}}

	svc := newTestService(repo, rek, s3)

	report, err := svc.IndexEvent(context.Background(), "ev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := indexing.IndexReport{Images: 3, Indexed: 2, Failed: 1, FacesStored: 3}
	if report != want {
		t.Fatalf("got report %+v, want %+v", report, want)
	}
	if len(repo.stored) != 3 {
		t.Errorf("expected 3 stored records, got %d", len(repo.stored))
	}
}

func TestIndexEventNoImages(t *testing.T) {
	svc := newTestService(&fakeFaceRepo{}, &fakeRekognition{}, &fakeS3{})

	_, err := svc.IndexEvent(context.Background(), "empty-event")
	if !errors.Is(err, indexing.ErrNoImagesFound) {
		t.Fatalf("expected ErrNoImagesFound, got %v", err)
	}
}

func TestIndexEventListError(t *testing.T) {
	listErr := errors.New("s3 unavailable")
	svc := newTestService(&fakeFaceRepo{}, &fakeRekognition{}, &fakeS3{listErr: listErr})

	_, err := svc.IndexEvent(context.Background(), "ev")
	if !errors.Is(err, listErr) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestIndexEventStoreFailureSkipsFaceOnly(t *testing.T) {
	rek := &fakeRekognition{
		facesPerImage: map[string][]entity.FaceAttributeRecord{
			"ev/a.jpg": {faceRecord("f1", "ev/a.jpg")},
		},
	}
	repo := &fakeFaceRepo{putErr: errors.New("dynamo write failed")}
	s3 := &fakeS3{keys: []string{"ev/a.jpg"}}

	svc := newTestService(repo, rek, s3)

	report, err := svc.IndexEvent(context.Background(), "ev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The image itself indexed; only the face write was lost.
	if report.Indexed != 1 || report.FacesStored != 0 {
		t.Fatalf("got report %+v, want indexed=1 faces_stored=0", report)
	}
}

func TestResetCollectionReportsBothSides(t *testing.T) {
	rek := &fakeRekognition{faceIDs: []string{"f1", "f2", "f3"}}
	repo := &fakeFaceRepo{deleted: 3}

	svc := newTestService(repo, rek, &fakeS3{})

	report, err := svc.ResetCollection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FacesDeleted != 3 || report.RecordsDeleted != 3 {
		t.Fatalf("got report %+v, want 3/3", report)
	}
	if len(rek.deletedIDs) != 3 {
		t.Errorf("expected 3 face IDs passed to DeleteFaces, got %d", len(rek.deletedIDs))
	}
}

func TestResetCollectionContinuesPastListFailure(t *testing.T) {
	rek := &fakeRekognition{listErr: errors.New("collection unavailable")}
	repo := &fakeFaceRepo{deleted: 7}

	svc := newTestService(repo, rek, &fakeS3{})

	report, err := svc.ResetCollection(context.Background())
	if err != nil {
		t.Fatalf("reset must not fail on collection errors, got %v", err)
	}
	if report.FacesDeleted != 0 || report.RecordsDeleted != 7 {
		t.Fatalf("got report %+v, want 0/7", report)
	}
}

func TestResetCollectionContinuesPastDeleteFailure(t *testing.T) {
	rek := &fakeRekognition{
		faceIDs:   []string{"f1"},
		deleteErr: errors.New("throttled"),
	}
	repo := &fakeFaceRepo{deleted: 1}

	svc := newTestService(repo, rek, &fakeS3{})

	report, err := svc.ResetCollection(context.Background())
	if err != nil {
		t.Fatalf("reset must not fail on collection errors, got %v", err)
	}
	if report.FacesDeleted != 0 || report.RecordsDeleted != 1 {
		t.Fatalf("got report %+v, want 0/1", report)
	}
}
