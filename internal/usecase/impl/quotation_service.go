// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/quotation"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"
	"fabquote/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// quotationService implements the QuotationUsecase interface.
type quotationService struct {
	quotationRepo repository.QuotationRepository
	objectStore   service.ObjectStore
	publisher     service.EventPublisher
	qrCode        service.QRCodeService
	signedURLTTL  time.Duration
	maxUploadAge  time.Duration
	paymentLink   string
	logger        *slog.Logger
}

// QuotationServiceParams holds dependencies for QuotationService, injected by Fx.
type QuotationServiceParams struct {
	fx.In

	QuotationRepo repository.QuotationRepository
	ObjectStore   service.ObjectStore
	Publisher     service.EventPublisher
	QRCode        service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewQuotationService is the constructor for quotationService.
func NewQuotationService(params QuotationServiceParams) usecase.QuotationUsecase {
	srv := &quotationService{
		quotationRepo: params.QuotationRepo,
		objectStore:   params.ObjectStore,
		publisher:     params.Publisher,
		qrCode:        params.QRCode,
		signedURLTTL:  time.Minute,
		logger:        params.Logger,
	}
	if params.Config != nil {
		if params.Config.Storage != nil && params.Config.Storage.SignedURLTTL > 0 {
			srv.signedURLTTL = params.Config.Storage.SignedURLTTL
		}
		if params.Config.Payment != nil {
			srv.paymentLink = params.Config.Payment.LinkBaseURL
		}
		// Uploads must be submitted well inside the sweeper's grace period so the
		// sweeper never deletes a file that a new row is about to reference.
		if sweeper := params.Config.Sweeper; sweeper != nil && sweeper.Enabled && sweeper.GracePeriod > 0 {
			srv.maxUploadAge = sweeper.GracePeriod / 2
		}
	}

	return srv
}

func (srv *quotationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadFile stores a design file under the caller's namespace.
func (srv *quotationService) UploadFile(ctx context.Context, caller entity.Caller, input *usecase.UploadFileInput) (*usecase.UploadedFile, error) {
	if caller.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	if err := guardError(quotation.CheckFile(input.Type, input.FileName, input.Size)); err != nil {
		return nil, err
	}

	rule, _ := quotation.RuleFor(input.Type)
	key := quotation.ObjectKey(caller.ID, time.Now().UnixMilli(), util.SanitizeFileName(input.FileName))

	if err := srv.objectStore.Put(ctx, key, io.LimitReader(input.Content, rule.MaxSize), input.ContentType); err != nil {
		return nil, domainerrors.NewDependencyError(err, "store design file")
	}

	srv.log(ctx).Info("Design file uploaded",
		slog.String("path", key),
		slog.String("size", util.FormatBytes(input.Size)),
	)

	return &usecase.UploadedFile{Path: key, Size: input.Size}, nil
}

// Submit validates the request and its uploaded file, then inserts the quotation in its initial status.
func (srv *quotationService) Submit(ctx context.Context, caller entity.Caller, input *usecase.SubmitQuotationInput) (*entity.Quotation, error) {
	if caller.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	err := guardError(quotation.CanSubmit(quotation.SubmitContext{
		CallerID: caller.ID,
		Type:     input.Type,
		Config:   input.Config,
		FilePath: input.FilePath,
	}))
	if err != nil {
		return nil, err
	}

	attrs, err := srv.objectStore.Attributes(ctx, input.FilePath)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrFileNotFound.WithDetails(input.FilePath)
		}

		return nil, domainerrors.NewDependencyError(err, "read design file attributes")
	}

	if err := guardError(quotation.CheckFile(input.Type, input.FilePath, attrs.Size)); err != nil {
		return nil, err
	}
	if srv.maxUploadAge > 0 && !attrs.ModTime.IsZero() && time.Since(attrs.ModTime) > srv.maxUploadAge {
		return nil, domainerrors.ErrValidationFailed.WithDetails("uploaded file has expired, upload it again")
	}

	filePath := input.FilePath
	q := &entity.Quotation{
		OwnerID:           caller.ID,
		OwnerName:         caller.DisplayName(),
		Type:              input.Type,
		Status:            quotation.InitialStatus(),
		Config:            input.Config,
		AdditionalMessage: input.AdditionalMessage,
		FilePath:          &filePath,
	}

	if err := srv.quotationRepo.Create(ctx, q); err != nil {
		return nil, domainerrors.NewDependencyError(err, "create quotation")
	}

	srv.log(ctx).Info("Quotation submitted",
		slog.String("quotation_id", q.ID.String()),
		slog.String("type", string(q.Type)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), newQuotationEvent(ctx, service.QuotationEventSubmitted, q, ""))

	return q, nil
}

// UpdateQuote applies a staff update in one conditional write against the observed status.
func (srv *quotationService) UpdateQuote(ctx context.Context, caller entity.Caller, id uuid.UUID, input *usecase.UpdateQuoteInput) (*entity.Quotation, error) {
	if !caller.IsStaff() {
		return nil, domainerrors.ErrForbidden
	}

	if input.Currency != nil && !input.Currency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported currency " + string(*input.Currency))
	}
	if input.Total != nil && !input.Total.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("total must be positive")
	}

	q, err := srv.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, quotationStoreError(err, "find quotation")
	}

	patch := entity.QuotationPatch{
		Total:    input.Total,
		Currency: input.Currency,
	}
	preview := *q
	patch.Apply(&preview)

	err = guardError(quotation.CanStaffUpdate(quotation.StaffUpdateContext{
		IsStaff:       true,
		Current:       q.Status,
		Target:        input.Status,
		PriceSupplied: !patch.IsEmpty(),
		PricedAfter:   preview.IsPriced(),
	}))
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != q.Status {
		patch.Status = input.Status
	}

	previous := q.Status
	if err := srv.quotationRepo.UpdateInStatus(ctx, id, previous, patch); err != nil {
		return nil, quotationStoreError(err, "update quotation")
	}

	patch.Apply(q)
	q.UpdatedAt = time.Now()

	srv.log(ctx).Info("Quotation updated",
		slog.String("quotation_id", id.String()),
		slog.String("from", previous.String()),
		slog.String("to", q.Status.String()),
	)

	if patch.Status != nil {
		publishEvent(ctx, srv.publisher, srv.log(ctx), newQuotationEvent(ctx, service.QuotationEventStatusChanged, q, previous))
	}

	return q, nil
}

// ListQuotations returns all rows for staff and the caller's own rows otherwise.
func (srv *quotationService) ListQuotations(ctx context.Context, caller entity.Caller) ([]*entity.Quotation, error) {
	if caller.ID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	filter := entity.QuotationFilter{}
	if !caller.IsStaff() {
		ownerID := caller.ID
		filter.OwnerID = &ownerID
	}

	quotations, err := srv.quotationRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDependencyError(err, "list quotations")
	}

	return quotations, nil
}

// GetQuotation returns a quotation to its owner or to staff.
func (srv *quotationService) GetQuotation(ctx context.Context, caller entity.Caller, id uuid.UUID) (*entity.Quotation, error) {
	q, err := srv.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, quotationStoreError(err, "find quotation")
	}

	err = guardError(quotation.CanRead(quotation.ReadContext{
		IsStaff: caller.IsStaff(),
		IsOwner: caller.Owns(q.OwnerID),
	}))
	if err != nil {
		return nil, err
	}

	return q, nil
}

// DownloadURL signs a short-lived link to the quotation's design file.
func (srv *quotationService) DownloadURL(ctx context.Context, caller entity.Caller, id uuid.UUID) (*usecase.DownloadLink, error) {
	q, err := srv.GetQuotation(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if !q.HasFile() {
		return nil, domainerrors.ErrNotFound.WithDetails("quotation has no design file")
	}

	url, err := srv.objectStore.SignedURL(ctx, *q.FilePath, srv.signedURLTTL)
	if err != nil {
		return nil, domainerrors.NewDependencyError(err, "sign download url")
	}

	return &usecase.DownloadLink{
		URL:       url,
		ExpiresAt: time.Now().Add(srv.signedURLTTL),
	}, nil
}

// PaymentQR renders the payment link of a Quoted quotation as a PNG QR code.
func (srv *quotationService) PaymentQR(ctx context.Context, caller entity.Caller, id uuid.UUID) ([]byte, error) {
	q, err := srv.GetQuotation(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if q.Status != entity.StatusQuoted {
		return nil, domainerrors.ErrInvalidState.WithDetails("payment is only possible while " + entity.StatusQuoted.String())
	}

	if srv.paymentLink == "" {
		return nil, domainerrors.ErrInternalError.WithDetails("payment link is not configured")
	}

	png, err := srv.qrCode.GeneratePaymentQR(q.ID, srv.paymentLink)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}
