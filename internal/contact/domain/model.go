package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidForm = errors.New("invalid contact form")
	ErrUnavailable = errors.New("contact relay is not configured")
)

// Form is the payload posted by the contact section.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required,max=200"`
	Email   string `form:"email" json:"email" binding:"required,email,max=320"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
	Locale  string `form:"locale" json:"locale" binding:"omitempty,oneof=en pt"`
}

// Normalize trims surrounding whitespace and rejects fields left empty.
func (f *Form) Normalize() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrInvalidForm
	}
	return nil
}

// Submission is a relayed contact message.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Locale    string    `json:"locale,omitempty"`
	RemoteIP  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
