package handler

import (
	"log/slog"
	"net/http"

	"fabquote/internal/delivery/api/response"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler accepts the public contact form.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// SubmitContact handles POST /api/v1/contact (multipart form, optional "file")
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req usecase.ContactInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		src, openErr := fileHeader.Open()
		if openErr != nil {
			return domainerrors.ErrValidationFailed.WithDetails("file could not be read")
		}
		defer src.Close()

		req.Attachment = &usecase.ContactAttachment{
			FileName:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Content:     src,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// No attachment.
	default:
		return domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	submission, err := h.contactUC.SubmitContact(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, submission)
}
