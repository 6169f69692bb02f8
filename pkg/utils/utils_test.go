package utils

import (
	"mime/multipart"
	"testing"
	"time"
)

func TestExternalImageID(t *testing.T) {
	u := New()

	tests := []struct {
		filename string
		want     string
	}{
		{"DSC_0042.JPG", "DSC_0042"},
		{"event/photos/DSC_0042.jpg", "DSC_0042"},
		{"selfie.png", "selfie"},
		{"noextension", "noextension"},
		{"double.tar.gz", "double.tar"},
	}

	for _, tt := range tests {
		if got := u.ExternalImageID(tt.filename); got != tt.want {
			t.Errorf("ExternalImageID(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{"nil file", nil, true},
		{"jpg ok", &multipart.FileHeader{Filename: "a.jpg", Size: 1024}, false},
		{"jpeg ok", &multipart.FileHeader{Filename: "a.JPEG", Size: 1024}, false},
		{"png ok", &multipart.FileHeader{Filename: "a.png", Size: 1024}, false},
		{"gif rejected", &multipart.FileHeader{Filename: "a.gif", Size: 1024}, true},
		{"no extension", &multipart.FileHeader{Filename: "a", Size: 1024}, true},
		{"too large", &multipart.FileHeader{Filename: "a.jpg", Size: 6 * 1024 * 1024}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.ValidateImageFile(tt.file)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestNewULIDFromTimestampIsSortable(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("ULID generation failed: %v", err)
	}
	later, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("ULID generation failed: %v", err)
	}

	if len(earlier) != 26 || len(later) != 26 {
		t.Fatalf("unexpected ULID lengths: %d %d", len(earlier), len(later))
	}
	if earlier >= later {
		t.Errorf("expected lexicographic ordering by timestamp: %s >= %s", earlier, later)
	}
}
