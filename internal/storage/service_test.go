package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

type mockPresigner struct {
	presignPutFunc func(ctx context.Context, key string) (string, error)
}

func (m *mockPresigner) PresignPut(ctx context.Context, key string) (string, error) {
	return m.presignPutFunc(ctx, key)
}

func assertAppError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != wantCode {
		t.Errorf("expected code %d, got %d", wantCode, appErr.Code)
	}
}

func TestUploadURL_Success(t *testing.T) {
	var gotKey string
	svc := NewStorageService(&mockPresigner{
		presignPutFunc: func(ctx context.Context, key string) (string, error) {
			gotKey = key
			return "https://bucket.s3.amazonaws.com/" + key + "?sig=abc", nil
		},
	})

	url, err := svc.UploadURL(context.Background(), "walleye.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "walleye.png" {
		t.Errorf("presigner received wrong key: %q", gotKey)
	}
	if url == "" {
		t.Error("expected a url")
	}
}

func TestUploadURL_RejectsBadNames(t *testing.T) {
	svc := NewStorageService(&mockPresigner{
		presignPutFunc: func(ctx context.Context, key string) (string, error) {
			t.Fatal("presigner should not be called")
			return "", nil
		},
	})

	tests := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"traversal", "../secrets.env"},
		{"absolute", "/etc/passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := svc.UploadURL(context.Background(), tt.name)
			assertAppError(t, err, 400)
		})
	}
}

func TestUploadURL_PresignerError(t *testing.T) {
	svc := NewStorageService(&mockPresigner{
		presignPutFunc: func(ctx context.Context, key string) (string, error) {
			return "", errors.New("no credentials")
		},
	})

	_, err := svc.UploadURL(context.Background(), "walleye.png")
	assertAppError(t, err, 500)
}
