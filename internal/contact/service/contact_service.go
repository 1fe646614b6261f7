package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leomarzeuski/portfolio/internal/contact/domain"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"go.uber.org/zap"
)

// MaxPerEmailPerHour caps archived messages from a single address.
const MaxPerEmailPerHour = 3

// ErrTooManyMessages is returned when an address exceeded MaxPerEmailPerHour.
var ErrTooManyMessages = errors.New("too many messages from this address")

// Relay delivers a submission to the form service.
type Relay interface {
	Send(ctx context.Context, s domain.Submission) error
}

// Archive persists relayed submissions.
type Archive interface {
	Create(ctx context.Context, s domain.Submission) error
	CountSince(ctx context.Context, email string, since time.Time) (int, error)
}

// ContactService relays contact form submissions
type ContactService struct {
	relay   Relay
	archive Archive
	logger  *zap.Logger
	now     func() time.Time
}

// NewContactService creates a new ContactService. relay may be nil (the form
// is then unavailable) and archive may be nil (nothing is persisted).
func NewContactService(relay Relay, archive Archive, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{relay: relay, archive: archive, logger: logger, now: time.Now}
}

// Submit validates the form, relays it and archives it.
func (s *ContactService) Submit(ctx context.Context, form domain.Form, remoteIP string) (*domain.Submission, error) {
	if s.relay == nil {
		return nil, domain.ErrUnavailable
	}
	if err := form.Normalize(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx, s.logger)
	now := s.now().UTC()

	if s.archive != nil {
		n, err := s.archive.CountSince(ctx, form.Email, now.Add(-time.Hour))
		if err != nil {
			logger.LogWarnf("submit_contact", "archive count failed: %v", err)
		} else if n >= MaxPerEmailPerHour {
			return nil, ErrTooManyMessages
		}
	}

	sub := domain.Submission{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Locale:    form.Locale,
		RemoteIP:  remoteIP,
		CreatedAt: now,
	}

	if err := s.relay.Send(ctx, sub); err != nil {
		return nil, err
	}
	logger.LogInfof("submit_contact", "relayed submission id=%s", sub.ID)

	if s.archive != nil {
		if err := s.archive.Create(ctx, sub); err != nil {
			logger.LogWarnf("submit_contact", "archive failed for id=%s: %v", sub.ID, err)
		}
	}

	return &sub, nil
}
