package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/quotation"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	"fabquote/internal/usecase"
	"fabquote/internal/util"

	"go.uber.org/fx"
)

const (
	defaultContactListLimit = 100
	maxContactListLimit     = 500
	defaultContactPrefix    = "public/contact-submissions/"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	objectStore service.ObjectStore
	prefix      string
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	ObjectStore service.ObjectStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	prefix := defaultContactPrefix
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.ContactPrefix != "" {
		prefix = params.Config.Storage.ContactPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &contactService{
		contactRepo: params.ContactRepo,
		objectStore: params.ObjectStore,
		prefix:      prefix,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact stores the attachment first, then the submission.
func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.ContactInput) (*entity.ContactSubmission, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and message are required")
	}

	submission := &entity.ContactSubmission{
		Name:        strings.TrimSpace(input.Name),
		Company:     strings.TrimSpace(input.Company),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		ServiceType: input.ServiceType,
		Message:     input.Message,
	}

	if att := input.Attachment; att != nil {
		if err := guardError(quotation.ContactFileRule.Check("contact attachments", att.FileName, att.Size)); err != nil {
			return nil, err
		}

		key := fmt.Sprintf("%s%d-%s", srv.prefix, time.Now().UnixMilli(), util.SanitizeFileName(att.FileName))
		if err := srv.objectStore.Put(ctx, key, io.LimitReader(att.Content, quotation.ContactFileRule.MaxSize), att.ContentType); err != nil {
			return nil, domainerrors.NewDependencyError(err, "store contact attachment")
		}
		submission.FilePath = &key
	}

	if err := srv.contactRepo.Create(ctx, submission); err != nil {
		if submission.FilePath != nil {
			if delErr := srv.objectStore.Delete(ctx, *submission.FilePath); delErr != nil {
				srv.log(ctx).Warn("Failed to remove attachment of unsaved contact submission",
					slog.String("path", *submission.FilePath),
					slog.Any("error", delErr),
				)
			}
		}

		return nil, domainerrors.NewDependencyError(err, "create contact submission")
	}

	srv.log(ctx).Info("Contact submission received",
		slog.String("submission_id", submission.ID.String()),
		slog.Bool("has_attachment", submission.FilePath != nil),
	)

	return submission, nil
}

// ListContacts returns the latest submissions to staff.
func (srv *contactService) ListContacts(ctx context.Context, caller entity.Caller, limit int) ([]*entity.ContactSubmission, error) {
	if !caller.IsStaff() {
		return nil, domainerrors.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultContactListLimit
	}
	if limit > maxContactListLimit {
		limit = maxContactListLimit
	}

	submissions, err := srv.contactRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, domainerrors.NewDependencyError(err, "list contact submissions")
	}

	return submissions, nil
}
