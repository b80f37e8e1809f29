package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fabquote/internal/delivery/api/response"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	QuotationUC usecase.QuotationUsecase
	ContactUC   usecase.ContactUsecase
	Logger      *slog.Logger
}

// AdminHandler serves the staff dashboard routes.
type AdminHandler struct {
	quotationUC usecase.QuotationUsecase
	contactUC   usecase.ContactUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		quotationUC: params.QuotationUC,
		contactUC:   params.ContactUC,
		logger:      params.Logger,
	}
}

// UpdateQuotation handles PATCH /api/v1/admin/quotations/:id
func (h *AdminHandler) UpdateQuotation(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateQuoteInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quotation, err := h.quotationUC.UpdateQuote(c.Request().Context(), caller, id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quotation)
}

// ListContacts handles GET /api/v1/admin/contacts?limit=N
func (h *AdminHandler) ListContacts(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
	}

	submissions, err := h.contactUC.ListContacts(c.Request().Context(), caller, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, submissions)
}
