package models

import (
	"strings"
	"time"
)

// ContactMessage is an inbound visitor submission from the contact form.
// It is created exclusively through the contact endpoint and is never read
// back through the public API.
type ContactMessage struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IPAddress  *string   `json:"ip_address"` // IPv4 or IPv6
	CreatedAt  time.Time `json:"created_at"`
	ReadStatus bool      `json:"read_status"`
}

// Validate checks the required submission fields. Subject is optional.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrContactFieldsRequired
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrContactFieldsRequired
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrContactFieldsRequired
	}
	return nil
}

// Common errors
var (
	ErrContactFieldsRequired = &ValidationError{Field: "name,email,message", Message: "Name, email, and message are required fields"}
)
