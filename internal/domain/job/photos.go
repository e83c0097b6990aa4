package job

import (
	"context"
	"fmt"
	"io"
)

// ImageEncoder normalizes an uploaded image into the stored format.
type ImageEncoder interface {
	Encode(r io.Reader) ([]byte, error)
	ContentType() string
	Extension() string
}

// PhotoStorage puts an object and returns its public URL.
type PhotoStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

func PhotoKey(jobID, photoID, ext string) string {
	return fmt.Sprintf("jobs/%s/%s.%s", jobID, photoID, ext)
}
