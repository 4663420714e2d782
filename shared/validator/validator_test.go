package validator_test

import (
	"jumpy/shared/failure"
	"jumpy/shared/validator"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"
)

type contactPayload struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
	}{
		{
			name:    "valid payload",
			body:    `{"name":"Jane","email":"jane@example.com","phone":"555-0100"}`,
			wantErr: false,
		},
		{
			name:     "missing required field",
			body:     `{"name":"Jane","email":"jane@example.com"}`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid email",
			body:     `{"name":"Jane","email":"not-an-email","phone":"555-0100"}`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload contactPayload
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				if code := failure.GetCode(err); code != tt.wantCode {
					t.Errorf("expected code %d, got %d", tt.wantCode, code)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func fileHeader(contentType string, size int64) multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return multipart.FileHeader{
		Filename: "upload.bin",
		Header:   header,
		Size:     size,
	}
}

func TestMimetypesValidation(t *testing.T) {
	type upload struct {
		File multipart.FileHeader `validate:"mimetypes=image/jpeg image/png image/webp image/gif"`
	}

	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{name: "jpeg allowed", contentType: "image/jpeg", wantErr: false},
		{name: "webp allowed", contentType: "image/webp", wantErr: false},
		{name: "svg rejected", contentType: "image/svg+xml", wantErr: true},
		{name: "missing content type rejected", contentType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := upload{File: fileHeader(tt.contentType, 100)}

			err := validator.ValidateStruct(&data)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMaxFileSizeValidation(t *testing.T) {
	type upload struct {
		File multipart.FileHeader `validate:"maxfilesize=10"`
	}

	maxBytes := int64(10 * 1024 * 1024)

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{name: "under the limit", size: 1024, wantErr: false},
		{name: "exactly at the limit", size: maxBytes, wantErr: false},
		{name: "one byte over the limit", size: maxBytes + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := upload{File: fileHeader("image/png", tt.size)}

			err := validator.ValidateStruct(&data)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("new", "oneof=new contacted booked completed cancelled"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("archived", "oneof=new contacted booked completed cancelled"); err == nil {
		t.Error("expected error for value outside the set")
	}
}
