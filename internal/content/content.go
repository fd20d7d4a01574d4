// Package content serves the static editorial side of the shop: care guides,
// store information, and the contact form intake.
package content

import (
	"context"
	"log/slog"

	apperrors "github.com/momomonster549/ecom-macsorchids/pkg/errors"

	"github.com/momomonster549/ecom-macsorchids/internal/domain"
)

// Guide categories and their display names.
var GuideCategories = map[string]string{
	"beginner":        "Beginner Guides",
	"watering":        "Watering & Humidity",
	"lighting":        "Light Requirements",
	"repotting":       "Repotting & Medium",
	"fertilizing":     "Fertilizing",
	"troubleshooting": "Troubleshooting",
	"seasonal":        "Seasonal Care",
}

// Service hands out seeded editorial content and accepts contact messages.
type Service struct {
	guides []domain.CareGuide
	info   domain.StoreInfo
	logger *slog.Logger
}

// NewService creates a content service with the seeded guides and store info.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		guides: seedGuides(),
		info:   seedStoreInfo(),
		logger: logger,
	}
}

// ListGuides returns all care guides, optionally filtered by category.
func (s *Service) ListGuides(_ context.Context, category string) []domain.CareGuide {
	if category == "" {
		return s.guides
	}
	var out []domain.CareGuide
	for _, g := range s.guides {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// GuideBySlug returns the care guide with the given slug.
func (s *Service) GuideBySlug(_ context.Context, slug string) (*domain.CareGuide, error) {
	for i := range s.guides {
		if s.guides[i].Slug == slug {
			return &s.guides[i], nil
		}
	}
	return nil, apperrors.NotFound("care guide", slug)
}

// FeaturedGuide returns the featured care guide, if any.
func (s *Service) FeaturedGuide(_ context.Context) (*domain.CareGuide, error) {
	for i := range s.guides {
		if s.guides[i].Featured {
			return &s.guides[i], nil
		}
	}
	return nil, apperrors.NotFound("care guide", "featured")
}

// StoreInfo returns the static shop information.
func (s *Service) StoreInfo(_ context.Context) domain.StoreInfo {
	return s.info
}

// SubmitContact records a contact-form message. The message is logged for
// follow-up; no mail is sent.
func (s *Service) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	s.logger.InfoContext(ctx, "contact message received",
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("subject", msg.Subject),
	)
	return nil
}
