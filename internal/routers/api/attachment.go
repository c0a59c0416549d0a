package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/middleware"
	"pujo-gallery/pkg/app"
	"pujo-gallery/pkg/errcode"
)

const (
	uploadTypeImage = "image"
	uploadTypeVideo = "video"
)

func GeneratePath(s string) string {
	n := len(s)
	if n <= 2 {
		return s
	}

	return GeneratePath(s[:n-2]) + "/" + s[n-2:]
}

// fileCheck matches the declared upload type against the file's content type.
func fileCheck(uploadType string, contentType string) error {
	switch uploadType {
	case uploadTypeImage, uploadTypeVideo:
	case "":
		return nil
	default:
		return errcode.InvalidParams.WithDetails("type must be image or video")
	}
	if !strings.HasPrefix(contentType, uploadType+"/") {
		return errcode.InvalidMediaType.WithDetails("expected a " + uploadType + " file")
	}
	return nil
}

func (s *Server) UploadAttachment(c *gin.Context) {
	response := app.NewResponse(c)

	uploadType := strings.ToLower(c.Request.FormValue("type"))
	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		logrus.Errorf("api.UploadAttachment err: %v", err)
		response.ToErrorResponse(errcode.UploadFailed)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err = fileCheck(uploadType, contentType); err != nil {
		toErrorResponse(response, "api.fileCheck", err, errcode.InvalidParams)
		return
	}

	randomPath := uuid.Must(uuid.NewV4()).String()
	objectKey := middleware.UserFrom(c).ID + "/" + GeneratePath(randomPath[:8]) + "/" + randomPath[9:] + "-" + fileHeader.Filename
	objectUrl, err := s.oss.PutObject(objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		toErrorResponse(response, "oss.PutObject", err, errcode.UploadFailed)
		return
	}

	response.ToResponse(gin.H{
		"content":      objectUrl,
		"type":         uploadType,
		"file_size":    fileHeader.Size,
		"content_type": contentType,
	})
}

func (s *Server) GetUploadStatus(c *gin.Context) {
	app.NewResponse(c).ToResponse(gin.H{
		"uploading": s.oss.IsUploading(),
	})
}
