package usecase

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/iho/fraudmini/internal/domain"
)

// s3Event is the object-created notification emitted by the object store.
type s3Event struct {
	Records []s3EventRecord `json:"Records"`
}

type s3EventRecord struct {
	S3 *struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key string `json:"key"`
		} `json:"object"`
	} `json:"s3"`

	// Body is set when the event was relayed through a queue.
	Body *string `json:"body"`
}

// ParseNotification extracts file references from a notification envelope.
// It accepts a bare object-store event or a queue batch whose record bodies
// carry such events. Object keys are URL-decoded.
func ParseNotification(body []byte) ([]domain.FileRef, error) {
	var event s3Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: invalid notification JSON", domain.ErrValidation)
	}

	var refs []domain.FileRef
	for i, rec := range event.Records {
		switch {
		case rec.S3 != nil:
			key, err := url.QueryUnescape(rec.S3.Object.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d has a malformed object key", domain.ErrValidation, i)
			}
			if rec.S3.Bucket.Name == "" || key == "" {
				return nil, fmt.Errorf("%w: record %d is missing bucket or key", domain.ErrValidation, i)
			}
			refs = append(refs, domain.FileRef{Bucket: rec.S3.Bucket.Name, Key: key})
		case rec.Body != nil:
			nested, err := ParseNotification([]byte(*rec.Body))
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			refs = append(refs, nested...)
		}
	}

	return refs, nil
}
