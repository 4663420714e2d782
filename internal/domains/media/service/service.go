package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/infras/s3"
	"jumpy/internal/domains/media/model"
	"jumpy/shared/constant"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	invalidMediaTypeText = "invalid media type"
	unsupportedFileText  = "unsupported file type"
	fileTooLargeText     = "file exceeds the maximum allowed size"
)

type Media interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, mediaClass string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// ValidateFile checks the upload against the class rules before any byte
// reaches storage. A disallowed MIME type is rejected regardless of size, and
// the size ceiling follows the detected class: video files get the video
// ceiling, everything else the image ceiling.
func ValidateFile(header *multipart.FileHeader, mediaClass string) error {
	contentType := header.Header.Get(constant.RequestHeaderContentType)

	var allowed []string

	switch mediaClass {
	case model.ClassImage:
		allowed = model.ImageMimeTypes
	case model.ClassVideo:
		allowed = model.VideoMimeTypes
	case model.ClassMedia:
		allowed = append(append([]string{}, model.ImageMimeTypes...), model.VideoMimeTypes...)
	default:
		return failure.BadRequestFromString(invalidMediaTypeText)
	}

	if !slices.Contains(allowed, contentType) {
		return failure.BadRequestFromString(unsupportedFileText)
	}

	maxSize := int64(model.MaxImageSizeBytes)
	if slices.Contains(model.VideoMimeTypes, contentType) {
		maxSize = model.MaxVideoSizeBytes
	}

	if header.Size > maxSize {
		return failure.BadRequestFromString(fileTooLargeText)
	}

	return nil
}

// GenerateFilename builds a collision-resistant object name keeping the
// original extension: {unix-millis}-{8-char random}.{ext}.
func GenerateFilename(originalName string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))

	return fmt.Sprintf("%d-%s.%s", timezone.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}

// Directory picks the bucket prefix for the upload's content type.
func Directory(contentType string) string {
	if slices.Contains(model.VideoMimeTypes, contentType) {
		return model.DirectoryVideos
	}

	return model.DirectoryImages
}

func (s *serviceImpl) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, mediaClass string) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = ValidateFile(header, mediaClass); err != nil {
		return constant.Empty, err
	}

	contentType := header.Header.Get(constant.RequestHeaderContentType)
	fileName := GenerateFilename(header.Filename)
	directory := Directory(contentType)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, directory, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("failed to upload media file")

		return constant.Empty, fmt.Errorf("failed to upload media file: %w", err)
	}

	log.Info().Str("fileName", fileName).Str("directory", directory).Msg("media file uploaded")

	return url, nil
}

func (s *serviceImpl) Delete(ctx context.Context, fileURL string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, fileURL)
	if objectName == constant.Empty {
		return failure.BadRequestFromString("invalid file url")
	}

	directory := model.DirectoryImages
	if strings.HasPrefix(objectName, model.DirectoryVideos+"/") {
		directory = model.DirectoryVideos
	}

	objectName = strings.TrimPrefix(objectName, directory+"/")

	if err = s.s3.DeleteFile(ctx, bucketName, directory, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete media file")

		return fmt.Errorf("failed to delete media file: %w", err)
	}

	return nil
}
