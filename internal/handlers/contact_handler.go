package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaiyan-th/portfolio/internal/models"
	"github.com/jaiyan-th/portfolio/internal/responses"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/jaiyan-th/portfolio/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var submission services.ContactSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		responses.Fail(c, http.StatusBadRequest, responses.CodeValidationError, "Name, email, and message are required fields")
		return
	}

	message, err := h.contactService.SubmitContactMessage(submission, c.ClientIP())
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			responses.Fail(c, http.StatusBadRequest, responses.CodeValidationError, "Name, email, and message are required fields")
			return
		}

		logger.WithError(err).Error("Failed to store contact message")
		responses.Fail(c, http.StatusInternalServerError, responses.CodeDatabaseError, "Failed to send message")
		return
	}

	logger.WithFields(logrus.Fields{
		"message_id": message.ID,
		"ip":         c.ClientIP(),
	}).Info("Contact message received")

	responses.Success(c, http.StatusOK, nil, "Message sent successfully")
}
