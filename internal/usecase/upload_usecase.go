package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UploadInput carries one file received from a multipart request.
type UploadInput struct {
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
}

// UploadOutput returns where the file ended up.
type UploadOutput struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadUsecase stores user files in the blob bucket.
type UploadUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)
}
