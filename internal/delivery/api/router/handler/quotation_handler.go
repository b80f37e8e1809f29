package handler

import (
	"log/slog"
	"net/http"

	"fabquote/internal/delivery/api/response"
	"fabquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuotationHandlerParams holds dependencies for QuotationHandler, injected by Fx.
type QuotationHandlerParams struct {
	fx.In

	QuotationUC    usecase.QuotationUsecase
	SettlementUC   usecase.SettlementUsecase
	CancellationUC usecase.CancellationUsecase
	Logger         *slog.Logger
}

// QuotationHandler serves the customer-facing quotation routes.
type QuotationHandler struct {
	quotationUC    usecase.QuotationUsecase
	settlementUC   usecase.SettlementUsecase
	cancellationUC usecase.CancellationUsecase
	logger         *slog.Logger
}

// NewQuotationHandler is the constructor for QuotationHandler
func NewQuotationHandler(params QuotationHandlerParams) *QuotationHandler {
	return &QuotationHandler{
		quotationUC:    params.QuotationUC,
		settlementUC:   params.SettlementUC,
		cancellationUC: params.CancellationUC,
		logger:         params.Logger,
	}
}

// ConfirmPaymentRequest carries the gateway's payment reference.
type ConfirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,max=255"`
}

// SubmitQuotation handles POST /api/v1/quotations
func (h *QuotationHandler) SubmitQuotation(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req usecase.SubmitQuotationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quotation, err := h.quotationUC.Submit(c.Request().Context(), caller, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, quotation)
}

// ListQuotations handles GET /api/v1/quotations
func (h *QuotationHandler) ListQuotations(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	quotations, err := h.quotationUC.ListQuotations(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quotations)
}

// GetQuotation handles GET /api/v1/quotations/:id
func (h *QuotationHandler) GetQuotation(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	quotation, err := h.quotationUC.GetQuotation(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quotation)
}

// CancelQuotation handles DELETE /api/v1/quotations/:id
func (h *QuotationHandler) CancelQuotation(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	if err := h.cancellationUC.Cancel(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/quotations/:id/payment
func (h *QuotationHandler) ConfirmPayment(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	var req ConfirmPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quotation, err := h.settlementUC.ConfirmPayment(c.Request().Context(), caller, id, req.PaymentReference)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quotation)
}

// DownloadFile handles GET /api/v1/quotations/:id/download
func (h *QuotationHandler) DownloadFile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	link, err := h.quotationUC.DownloadURL(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, link)
}

// PaymentQR handles GET /api/v1/quotations/:id/qr
func (h *QuotationHandler) PaymentQR(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := quotationID(c)
	if err != nil {
		return err
	}

	png, err := h.quotationUC.PaymentQR(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
