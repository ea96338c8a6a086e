package impl

import (
	"context"
	"regexp"
	"strings"
	"testing"

	mocksvc "rituality/internal/mocks/service"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Upload_KeyShape(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	service := NewUploadService(UploadServiceParams{Store: store, Logger: newDiscardLogger()})

	ctx := context.Background()
	userID := uuid.New()

	var storedKey string
	store.On("Put", ctx, mock.AnythingOfType("string"), "image/jpeg", []byte("fake-jpeg")).
		Run(func(args mock.Arguments) {
			storedKey = args.String(1)
		}).
		Return(nil)
	store.On("URL", mock.AnythingOfType("string")).Return("https://cdn.example.com/some-key")

	output, err := service.Upload(ctx, &usecase.UploadInput{
		UserID:      userID,
		FileName:    "Kitchen Photo.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("fake-jpeg"),
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, storedKey, output.Key)
	assert.True(t, strings.HasPrefix(output.Key, userID.String()+"/"))
	// Server-chosen name: uuid plus the lowercased original extension.
	assert.Regexp(t, regexp.MustCompile(`/[0-9a-f-]{36}\.jpg$`), output.Key)
	assert.Equal(t, "https://cdn.example.com/some-key", output.URL)
}

func TestUploadService_Upload_StoreFailure(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	service := NewUploadService(UploadServiceParams{Store: store, Logger: newDiscardLogger()})

	ctx := context.Background()
	store.On("Put", ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(errors.New("bucket unavailable"))

	output, err := service.Upload(ctx, &usecase.UploadInput{
		UserID:      uuid.New(),
		FileName:    "floorplan.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
}
