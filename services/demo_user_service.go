package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

type DemoUserService interface {
	Register(ctx context.Context, req models.RegisterDemoUserRequest) (*models.DemoUser, error)
}

type demoUserService struct {
	demoUserRepo repositories.DemoUserRepository
	logger       *slog.Logger
	now          func() time.Time
}

func NewDemoUserService(demoUserRepo repositories.DemoUserRepository, logger *slog.Logger) DemoUserService {
	return &demoUserService{demoUserRepo: demoUserRepo, logger: logger, now: time.Now}
}

// Register stores the signup keyed by lowercased email. Registering the
// same email again overwrites the earlier record.
func (s *demoUserService) Register(ctx context.Context, req models.RegisterDemoUserRequest) (*models.DemoUser, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrorValidation{Message: "Missing or invalid name in request body."}
	}
	if req.ConsentGiven == nil {
		return nil, models.ErrorValidation{Message: "Missing or invalid consentGiven status (must be true or false)."}
	}

	user := &models.DemoUser{
		Name:             name,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		MarketingConsent: *req.ConsentGiven,
		SignedUpAt:       s.now().UTC(),
		Source:           models.DemoUserSource,
	}
	if company := strings.TrimSpace(req.CompanyName); company != "" {
		user.CompanyName = &company
	}

	if err := s.demoUserRepo.Save(ctx, user); err != nil {
		return nil, storageError("Failed to register user due to an internal error.", err)
	}

	s.logger.Info("demo user registered", "email", user.Email, "marketing_consent", user.MarketingConsent)
	return user, nil
}
