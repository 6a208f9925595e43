package directive

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
	"adcheck/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.service = NewService(NewInMemoryStore(), slog.Default(), nil)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSaveValidation() {
	ctx := context.Background()

	_, err := s.service.Save(ctx, "", domain.Directive{ADNumber: "2025-0254"})
	s.requireCode(err, dErrors.CodeValidation)

	_, err = s.service.Save(ctx, "AD 2025-0254", domain.Directive{})
	s.requireCode(err, dErrors.CodeValidation)
}

func (s *ServiceSuite) TestSavePreservesCreatedAt() {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	first, err := s.service.Save(requestcontext.WithTime(context.Background(), created),
		"AD 2025-0254", domain.Directive{ADNumber: "2025-0254"})
	s.Require().NoError(err)
	s.Equal(created, first.CreatedAt)

	second, err := s.service.Save(requestcontext.WithTime(context.Background(), updated),
		"AD 2025-0254", domain.Directive{ADNumber: "2025-0254R1"})
	s.Require().NoError(err)
	s.Equal(created, second.CreatedAt)
	s.Equal(updated, second.UpdatedAt)
}

func (s *ServiceSuite) TestGetUnknownLabelIsNotFound() {
	_, err := s.service.Get(context.Background(), "nope")
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *ServiceSuite) TestDirectiveSet() {
	ctx := context.Background()
	for _, label := range []string{"AD B", "AD A", "AD C"} {
		_, err := s.service.Save(ctx, label, domain.Directive{ADNumber: label})
		s.Require().NoError(err)
	}

	s.Run("no labels selects everything in registry order", func() {
		set, err := s.service.DirectiveSet(ctx, nil)
		s.Require().NoError(err)
		s.Equal([]string{"AD B", "AD A", "AD C"}, set.Labels())
	})

	s.Run("explicit labels keep the given order", func() {
		set, err := s.service.DirectiveSet(ctx, []string{"AD C", "AD B"})
		s.Require().NoError(err)
		s.Equal([]string{"AD C", "AD B"}, set.Labels())
	})

	s.Run("unknown label fails the whole selection", func() {
		_, err := s.service.DirectiveSet(ctx, []string{"AD C", "nope"})
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("duplicate labels are rejected", func() {
		_, err := s.service.DirectiveSet(ctx, []string{"AD C", "AD C"})
		s.requireCode(err, dErrors.CodeValidation)
	})
}

func (s *ServiceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	var domainErr *dErrors.Error
	s.Require().ErrorAs(err, &domainErr)
	s.Equal(code, domainErr.Code)
}
