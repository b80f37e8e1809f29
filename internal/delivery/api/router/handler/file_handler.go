package handler

import (
	"log/slog"
	"net/http"

	"fabquote/internal/delivery/api/response"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/entity"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	QuotationUC usecase.QuotationUsecase
	Logger      *slog.Logger
}

// FileHandler accepts design file uploads.
type FileHandler struct {
	quotationUC usecase.QuotationUsecase
	logger      *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		quotationUC: params.QuotationUC,
		logger:      params.Logger,
	}
}

// UploadFile handles POST /api/v1/files (multipart: type, file)
func (h *FileHandler) UploadFile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file could not be read")
	}
	defer src.Close()

	uploaded, err := h.quotationUC.UploadFile(c.Request().Context(), caller, &usecase.UploadFileInput{
		Type:        entity.QuotationType(c.FormValue("type")),
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     src,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, uploaded)
}
