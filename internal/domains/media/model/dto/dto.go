package dto

// UploadMediaResponse returns the public URL of the stored object.
type UploadMediaResponse struct {
	URL string `json:"url"`
}

// DeleteMediaRequest identifies the stored object by its public URL.
type DeleteMediaRequest struct {
	URL string `json:"url" validate:"required,url"`
}
