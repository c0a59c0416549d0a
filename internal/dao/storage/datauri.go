package storage

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
	"pujo-gallery/pkg/errcode"
)

var (
	_ core.ObjectStorageService = (*dataURIServant)(nil)
	_ core.VersionInfo          = (*dataURIServant)(nil)
)

// dataURIServant keeps media inline in the post as a data: URI after an
// artificial upload delay.
type dataURIServant struct {
	imageDelay   time.Duration
	videoDelay   time.Duration
	maxImageSize int64
	maxVideoSize int64

	uploading int32
}

func MustDataURIService() (core.ObjectStorageService, core.VersionInfo) {
	s := conf.UploadSetting
	return NewDataURIService(s.ImageDelay, s.VideoDelay, s.MaxImageSize, s.MaxVideoSize)
}

func NewDataURIService(imageDelay, videoDelay time.Duration, maxImageSize, maxVideoSize int64) (core.ObjectStorageService, core.VersionInfo) {
	obj := &dataURIServant{
		imageDelay:   imageDelay,
		videoDelay:   videoDelay,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
	}
	return obj, obj
}

func (s *dataURIServant) PutObject(objectKey string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	var (
		delay   time.Duration
		maxSize int64
	)
	switch {
	case strings.HasPrefix(contentType, "image/"):
		delay, maxSize = s.imageDelay, s.maxImageSize
	case strings.HasPrefix(contentType, "video/"):
		delay, maxSize = s.videoDelay, s.maxVideoSize
	default:
		return "", errcode.InvalidMediaType
	}
	if maxSize > 0 && objectSize > maxSize {
		return "", errcode.FileTooLarge
	}

	atomic.AddInt32(&s.uploading, 1)
	defer atomic.AddInt32(&s.uploading, -1)

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		logrus.Errorf("dataURIServant.PutObject read %s err: %v", objectKey, err)
		return "", errcode.UploadFailed
	}
	if maxSize > 0 && int64(buf.Len()) > maxSize {
		return "", errcode.FileTooLarge
	}

	var sb strings.Builder
	sb.Grow(len(contentType) + 13 + base64.StdEncoding.EncodedLen(buf.Len()))
	sb.WriteString("data:")
	sb.WriteString(contentType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))

	time.Sleep(delay)
	logrus.Debugf("dataURIServant.PutObject %s (%s, %d bytes) done", objectKey, contentType, buf.Len())
	return sb.String(), nil
}

func (s *dataURIServant) IsUploading() bool {
	return atomic.LoadInt32(&s.uploading) > 0
}

func (s *dataURIServant) Name() string {
	return "DataURI"
}

func (s *dataURIServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
