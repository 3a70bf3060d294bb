package services

import (
	"github.com/jaiyan-th/portfolio/internal/models"
	"github.com/jaiyan-th/portfolio/internal/repositories"
)

// ContactSubmission carries the raw fields of an inbound contact form post
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService struct {
	contactRepo *repositories.ContactMessageRepository
}

func NewContactService(contactRepo *repositories.ContactMessageRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// SubmitContactMessage validates a submission and persists it together with
// the caller's network origin. Validation failures are returned before the
// store is touched; a failed insert leaves no partial record.
func (s *ContactService) SubmitContactMessage(submission ContactSubmission, ipAddress string) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    submission.Name,
		Email:   submission.Email,
		Subject: submission.Subject,
		Message: submission.Message,
	}

	if err := message.Validate(); err != nil {
		return nil, err
	}

	if ipAddress != "" {
		message.IPAddress = &ipAddress
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

// GetAllMessages retrieves every stored message for operator tooling such
// as the export command
func (s *ContactService) GetAllMessages() ([]*models.ContactMessage, error) {
	return s.contactRepo.GetAll()
}
