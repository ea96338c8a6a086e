package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"rituality/config"
	"rituality/internal/delivery/http/response"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts multipart file uploads.
type UploadHandler struct {
	uc       usecase.UploadUsecase
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	maxBytes := int64(defaultMaxUploadBytes)
	if cfg.Storage != nil && cfg.Storage.MaxUploadBytes > 0 {
		maxBytes = cfg.Storage.MaxUploadBytes
	}

	return &UploadHandler{
		uc:       uc,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores the "file" part of a multipart request in the blob bucket.
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "multipart field 'file' is required")
	}
	if fileHeader.Size > h.maxBytes {
		return errors.Wrap(domainerrors.ErrValidationFailed, "file exceeds the upload size limit")
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	output, err := h.uc.Upload(c.Request().Context(), &usecase.UploadInput{
		UserID:      userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded")
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read multipart file")
	}

	return data, nil
}
