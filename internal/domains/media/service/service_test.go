package service_test

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"jumpy/internal/domains/media/model"
	"jumpy/internal/domains/media/service"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name       string
		header     *multipart.FileHeader
		mediaClass string
		wantErr    bool
	}{
		{
			name:       "image at exactly the ceiling",
			header:     fileHeader("photo.jpg", "image/jpeg", model.MaxImageSizeBytes),
			mediaClass: model.ClassImage,
			wantErr:    false,
		},
		{
			name:       "image one byte over",
			header:     fileHeader("photo.jpg", "image/jpeg", model.MaxImageSizeBytes+1),
			mediaClass: model.ClassImage,
			wantErr:    true,
		},
		{
			name:       "video at exactly the ceiling",
			header:     fileHeader("walkthrough.mp4", "video/mp4", model.MaxVideoSizeBytes),
			mediaClass: model.ClassVideo,
			wantErr:    false,
		},
		{
			name:       "video one byte over",
			header:     fileHeader("walkthrough.mp4", "video/mp4", model.MaxVideoSizeBytes+1),
			mediaClass: model.ClassVideo,
			wantErr:    true,
		},
		{
			name:       "disallowed mime rejected regardless of size",
			header:     fileHeader("malware.exe", "application/octet-stream", 10),
			mediaClass: model.ClassImage,
			wantErr:    true,
		},
		{
			name:       "video mime rejected for image class",
			header:     fileHeader("walkthrough.mp4", "video/mp4", 1024),
			mediaClass: model.ClassImage,
			wantErr:    true,
		},
		{
			name:       "media class accepts images with the image ceiling",
			header:     fileHeader("photo.webp", "image/webp", model.MaxImageSizeBytes),
			mediaClass: model.ClassMedia,
			wantErr:    false,
		},
		{
			name:       "media class gives images no video ceiling",
			header:     fileHeader("photo.webp", "image/webp", model.MaxImageSizeBytes+1),
			mediaClass: model.ClassMedia,
			wantErr:    true,
		},
		{
			name:       "media class accepts large videos",
			header:     fileHeader("walkthrough.webm", "video/webm", model.MaxVideoSizeBytes),
			mediaClass: model.ClassMedia,
			wantErr:    false,
		},
		{
			name:       "unknown class rejected",
			header:     fileHeader("photo.jpg", "image/jpeg", 1024),
			mediaClass: "document",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateFile(tt.header, tt.mediaClass)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13}-[0-9a-f]{8}\.jpg$`)

	name := service.GenerateFilename("Party Photo.JPG")

	assert.Regexp(t, pattern, name)

	other := service.GenerateFilename("Party Photo.JPG")
	assert.NotEqual(t, name, other)
}

func TestDirectory(t *testing.T) {
	assert.Equal(t, model.DirectoryImages, service.Directory("image/png"))
	assert.Equal(t, model.DirectoryVideos, service.Directory("video/quicktime"))
	assert.Equal(t, model.DirectoryImages, service.Directory("application/octet-stream"))
}
