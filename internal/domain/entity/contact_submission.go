package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	FilePath    *string   `json:"file_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
