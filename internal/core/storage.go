package core

import (
	"io"
)

// ObjectStorageService turns an uploaded media file into a reference a post can carry.
type ObjectStorageService interface {
	PutObject(objectKey string, reader io.Reader, objectSize int64, contentType string) (string, error)
	IsUploading() bool
}
