package usecase_test

import (
	"errors"
	"testing"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []domain.FileRef
		wantErr bool
	}{
		{
			name: "object created event",
			body: `{"Records":[{"s3":{"bucket":{"name":"raw"},"object":{"key":"in/batch+one%3A1.csv"}}}]}`,
			want: []domain.FileRef{{Bucket: "raw", Key: "in/batch one:1.csv"}},
		},
		{
			name: "queue wrapped events",
			body: `{"Records":[
				{"body":"{\"Records\":[{\"s3\":{\"bucket\":{\"name\":\"raw\"},\"object\":{\"key\":\"a.csv\"}}}]}"},
				{"body":"{\"Records\":[{\"s3\":{\"bucket\":{\"name\":\"raw\"},\"object\":{\"key\":\"b.csv\"}}}]}"}
			]}`,
			want: []domain.FileRef{{Bucket: "raw", Key: "a.csv"}, {Bucket: "raw", Key: "b.csv"}},
		},
		{
			name: "test event without records",
			body: `{"Event":"s3:TestEvent"}`,
			want: nil,
		},
		{
			name:    "not JSON",
			body:    `Records`,
			wantErr: true,
		},
		{
			name:    "missing key",
			body:    `{"Records":[{"s3":{"bucket":{"name":"raw"},"object":{}}}]}`,
			wantErr: true,
		},
		{
			name:    "malformed wrapped body",
			body:    `{"Records":[{"body":"{"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseNotification([]byte(tt.body))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ref %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
