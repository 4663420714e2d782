package model

const (
	ClassImage = "image"
	ClassVideo = "video"
	ClassMedia = "media"
)

const (
	DirectoryImages = "images"
	DirectoryVideos = "videos"
)

const (
	MaxImageSizeBytes = 10 << 20
	MaxVideoSizeBytes = 100 << 20
)

var ImageMimeTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

var VideoMimeTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
