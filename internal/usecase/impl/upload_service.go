package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/service"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store  service.ObjectStore
	logger *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Store  service.ObjectStore
	Logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the file under "<userID>/<uuid><ext>". The original file
// name only contributes its extension; everything else is server-chosen.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.FileName))
	key := input.UserID.String() + "/" + uuid.New().String() + ext

	if err := srv.store.Put(ctx, key, input.ContentType, input.Data); err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	srv.log(ctx).Debug("Upload stored", slog.String("key", key), slog.Int("bytes", len(input.Data)))

	return &usecase.UploadOutput{
		Key: key,
		URL: srv.store.URL(key),
	}, nil
}
