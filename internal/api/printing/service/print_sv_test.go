package printingService

import (
	"ZisionX/internal/api/printing"
	printingRepository "ZisionX/internal/api/printing/repository"
	"ZisionX/internal/entity"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) UploadObject(_ context.Context, _ string, _ io.Reader) error { return nil }

func (f *fakeS3) GetObject(_ context.Context, key string) ([]byte, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "no such key", nil)
	}
	return body, nil
}

func (f *fakeS3) PresignURL(key string, _ time.Duration) (string, error) {
	if _, ok := f.objects[key]; !ok {
		return "", errors.New("file does not exist")
	}
	return "https://signed.example/" + key, nil
}

func (f *fakeS3) ListKeys(_ context.Context, _ string) ([]string, error) { return nil, nil }

type fakeSmtp struct {
	sendErr    error
	sentTo     string
	sentEvent  string
	sentImage  string
	attachment []byte
}

func (f *fakeSmtp) SendPrintRequest(phoneNumber, eventCode, fileName string, attachment []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = phoneNumber
	f.sentEvent = eventCode
	f.sentImage = fileName
	f.attachment = attachment
	return nil
}

type fakePrintRequestStore struct {
	created   []entity.PrintRequest
	createErr error
}

func (f *fakePrintRequestStore) Create(_ context.Context, printRequest entity.PrintRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, printRequest)
	return nil
}

func (f *fakePrintRequestStore) GetByEventCode(_ context.Context, _ string) ([]entity.PrintRequest, error) {
	return f.created, nil
}

type fakeRepo struct {
	store *fakePrintRequestStore
}

func (f *fakeRepo) NewClient(_ bool) (printingRepository.Client, error) {
	return printingRepository.Client{
		PrintRequests: f.store,
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) { return "01TEST", nil }
func (fakeUtils) ValidateImageFile(_ *multipart.FileHeader) error  { return nil }
func (fakeUtils) ExternalImageID(filename string) string           { return filename }

func newTestService(s3Client *fakeS3, mailer *fakeSmtp, store *fakePrintRequestStore) *printingService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &printingService{
		log:        logger,
		repo:       &fakeRepo{store: store},
		s3Client:   s3Client,
		smtpMailer: mailer,
		utils:      fakeUtils{},
	}
}

func TestRequestPrintSuccess(t *testing.T) {
	s3Client := &fakeS3{objects: map[string][]byte{
		"ev42/DSC_0042.JPG": []byte("jpeg-bytes"),
	}}
	mailer := &fakeSmtp{}
	store := &fakePrintRequestStore{}
	svc := newTestService(s3Client, mailer, store)

	resp, err := svc.RequestPrint(context.Background(), printing.PrintRequest{
		PhoneNumber: "628123456789",
		EventCode:   "ev42",
		ImageName:   "DSC_0042",
	})
	if err != nil {
		t.Fatalf("RequestPrint failed: %v", err)
	}

	if resp.PresignedURL != "https://signed.example/ev42/DSC_0042.JPG" {
		t.Errorf("unexpected presigned URL: %s", resp.PresignedURL)
	}
	if mailer.sentTo != "628123456789" || mailer.sentEvent != "ev42" || mailer.sentImage != "DSC_0042" {
		t.Errorf("unexpected mail parameters: %+v", mailer)
	}
	if string(mailer.attachment) != "jpeg-bytes" {
		t.Error("attachment must be the stored object bytes")
	}

	if len(store.created) != 1 {
		t.Fatalf("expected 1 audit row, got %d", len(store.created))
	}
	if store.created[0].EventCode != "ev42" || store.created[0].ImageName != "DSC_0042" {
		t.Errorf("unexpected audit row: %+v", store.created[0])
	}
}

func TestRequestPrintImageNotFound(t *testing.T) {
	svc := newTestService(&fakeS3{}, &fakeSmtp{}, &fakePrintRequestStore{})

	_, err := svc.RequestPrint(context.Background(), printing.PrintRequest{
		PhoneNumber: "628123456789",
		EventCode:   "ev42",
		ImageName:   "missing",
	})
	if !errors.Is(err, printing.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestRequestPrintMailFailure(t *testing.T) {
	s3Client := &fakeS3{objects: map[string][]byte{
		"ev42/DSC_0042.JPG": []byte("jpeg-bytes"),
	}}
	mailer := &fakeSmtp{sendErr: errors.New("smtp refused")}
	store := &fakePrintRequestStore{}
	svc := newTestService(s3Client, mailer, store)

	_, err := svc.RequestPrint(context.Background(), printing.PrintRequest{
		PhoneNumber: "628123456789",
		EventCode:   "ev42",
		ImageName:   "DSC_0042",
	})
	if !errors.Is(err, printing.ErrFailedToSend) {
		t.Fatalf("expected ErrFailedToSend, got %v", err)
	}
	if len(store.created) != 0 {
		t.Error("no audit row should be written when the email fails")
	}
}

func TestRequestPrintAuditFailureDoesNotFailRequest(t *testing.T) {
	s3Client := &fakeS3{objects: map[string][]byte{
		"ev42/DSC_0042.JPG": []byte("jpeg-bytes"),
	}}
	store := &fakePrintRequestStore{createErr: errors.New("postgres down")}
	svc := newTestService(s3Client, &fakeSmtp{}, store)

	resp, err := svc.RequestPrint(context.Background(), printing.PrintRequest{
		PhoneNumber: "628123456789",
		EventCode:   "ev42",
		ImageName:   "DSC_0042",
	})
	if err != nil {
		t.Fatalf("audit failure must not fail the request, got %v", err)
	}
	if resp.PresignedURL == "" {
		t.Error("expected a presigned URL despite audit failure")
	}
}
