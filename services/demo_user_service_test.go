package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/logging"
	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

func TestRegisterDemoUser(t *testing.T) {
	kv, _ := newTestStore(t)
	repo := repositories.NewDemoUserRepository(kv)
	svc := NewDemoUserService(repo, logging.Discard()).(*demoUserService)
	signedUp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return signedUp }
	ctx := context.Background()

	consent := true
	_, err := svc.Register(ctx, models.RegisterDemoUserRequest{
		Name:         "  Ida Hansen ",
		Email:        " Ida@Example.DK ",
		CompanyName:  "Butik ApS",
		ConsentGiven: &consent,
	})
	require.NoError(t, err)

	stored, err := repo.GetByEmail(ctx, "ida@example.dk")
	require.NoError(t, err)
	assert.Equal(t, "Ida Hansen", stored.Name)
	assert.Equal(t, "ida@example.dk", stored.Email)
	require.NotNil(t, stored.CompanyName)
	assert.Equal(t, "Butik ApS", *stored.CompanyName)
	assert.True(t, stored.MarketingConsent)
	assert.True(t, signedUp.Equal(stored.SignedUpAt))
	assert.Equal(t, models.DemoUserSource, stored.Source)

	// re-registration overwrites
	consent = false
	_, err = svc.Register(ctx, models.RegisterDemoUserRequest{Name: "Ida", Email: "ida@example.dk", ConsentGiven: &consent})
	require.NoError(t, err)

	stored, err = repo.GetByEmail(ctx, "ida@example.dk")
	require.NoError(t, err)
	assert.False(t, stored.MarketingConsent)
	assert.Nil(t, stored.CompanyName)

	emails, err := repo.ListEmails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ida@example.dk"}, emails)
}

func TestRegisterDemoUserValidation(t *testing.T) {
	kv, _ := newTestStore(t)
	svc := NewDemoUserService(repositories.NewDemoUserRepository(kv), logging.Discard())
	consent := true

	_, err := svc.Register(context.Background(), models.RegisterDemoUserRequest{Name: " ", Email: "a@b.dk", ConsentGiven: &consent})
	assert.IsType(t, models.ErrorValidation{}, err)

	_, err = svc.Register(context.Background(), models.RegisterDemoUserRequest{Name: "A", Email: "a@b.dk"})
	assert.IsType(t, models.ErrorValidation{}, err)
}
