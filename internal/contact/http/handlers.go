package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/internal/contact/domain"
	"github.com/leomarzeuski/portfolio/internal/contact/service"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"go.uber.org/zap"
)

// Submitter is the service behind the contact endpoint.
type Submitter interface {
	Submit(ctx context.Context, form domain.Form, remoteIP string) (*domain.Submission, error)
}

type Handler struct {
	contact Submitter
	logger  *zap.Logger
}

func NewHandler(contact Submitter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{contact: contact, logger: logger}
}

// Submit accepts a form-encoded or JSON contact message.
func (h *Handler) Submit(c *gin.Context) {
	var form domain.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact form"})
		return
	}

	ctx := c.Request.Context()
	sub, err := h.contact.Submit(ctx, form, c.ClientIP())
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"ok": true, "id": sub.ID})
	case errors.Is(err, domain.ErrInvalidForm):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact form"})
	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form unavailable"})
	case errors.Is(err, service.ErrTooManyMessages):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	default:
		logging.FromContext(ctx, h.logger).LogError("submit_contact", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
	}
}
