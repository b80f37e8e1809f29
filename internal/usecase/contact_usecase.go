package usecase

import (
	"context"
	"io"

	"fabquote/internal/domain/entity"
)

// ContactUsecase handles messages left through the public contact form.
type ContactUsecase interface {
	// SubmitContact stores a message and its optional attachment. No identity is required.
	SubmitContact(ctx context.Context, input *ContactInput) (*entity.ContactSubmission, error)

	// ListContacts returns submissions, newest first. Staff only.
	ListContacts(ctx context.Context, caller entity.Caller, limit int) ([]*entity.ContactSubmission, error)
}

// ContactInput defines a contact form submission.
type ContactInput struct {
	Name        string `form:"name" validate:"required,max=200"`
	Company     string `form:"company" validate:"max=200"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"max=32"`
	ServiceType string `form:"service_type" validate:"max=100"`
	Message     string `form:"message" validate:"required,max=5000"`

	// Attachment is optional.
	Attachment *ContactAttachment `form:"-"`
}

// ContactAttachment is a file attached to a contact message.
type ContactAttachment struct {
	FileName    string
	Size        int64
	ContentType string
	Content     io.Reader
}
