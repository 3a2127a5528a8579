package services

import (
	"context"
	"fmt"
	"regexp"

	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/translate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	ServiceSlug string
	Subject     string
	Message     string
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) ([]models.ContactSubmission, error)
	List(ctx context.Context, lang string, page, limit int, unreadOnly bool) ([]models.ContactSubmission, int64, error)
	AllGrouped(ctx context.Context) ([]Localized[models.ContactSubmission], error)
	MarkRead(ctx context.Context, contactID string, read bool) error
	Delete(ctx context.Context, contactID string) error
}

type contactService struct {
	rep    *Replicator[models.ContactSubmission]
	logger *logrus.Logger
}

func NewContactService(rep *Replicator[models.ContactSubmission], logger *logrus.Logger) ContactService {
	return &contactService{rep: rep, logger: logger}
}

// Create stores a submission replicated across all languages so the dashboard
// can display it in whichever language an admin works in.
func (s *contactService) Create(ctx context.Context, in ContactInput) ([]models.ContactSubmission, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if in.Message == "" {
		return nil, fmt.Errorf("message is required: %w", ErrValidation)
	}
	if !emailRegex.MatchString(in.Email) {
		return nil, fmt.Errorf("a valid email is required: %w", ErrValidation)
	}

	contactID := uuid.NewString()
	source := translate.Content{
		"subject": in.Subject,
		"message": in.Message,
	}

	return s.rep.Create(ctx, contactID, source, func(lang models.Language, content translate.Content) models.ContactSubmission {
		return models.ContactSubmission{
			ContactID:   contactID,
			LanguageID:  lang.ID,
			Name:        in.Name,
			Email:       in.Email,
			Phone:       in.Phone,
			ServiceSlug: in.ServiceSlug,
			Subject:     content["subject"],
			Message:     content["message"],
			IsRead:      false,
		}
	})
}

func (s *contactService) List(ctx context.Context, lang string, page, limit int, unreadOnly bool) ([]models.ContactSubmission, int64, error) {
	page, limit = normalizePaging(page, limit)
	filters := map[string]any{}
	if unreadOnly {
		filters["is_read"] = false
	}
	return s.rep.List(ctx, lang, repository.ListOptions{
		Filters: filters,
		OrderBy: "created_at DESC",
		Page:    page,
		Limit:   limit,
	})
}

func (s *contactService) AllGrouped(ctx context.Context) ([]Localized[models.ContactSubmission], error) {
	return s.rep.AllGrouped(ctx, repository.ListOptions{
		OrderBy: "created_at DESC, language_id ASC",
	})
}

// MarkRead flips the shared read flag on every language row of the submission.
func (s *contactService) MarkRead(ctx context.Context, contactID string, read bool) error {
	return s.rep.SetShared(ctx, contactID, map[string]any{"is_read": read})
}

func (s *contactService) Delete(ctx context.Context, contactID string) error {
	return s.rep.Delete(ctx, contactID)
}
