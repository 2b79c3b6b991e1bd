package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"h3llo-cms/models"
	"h3llo-cms/store"
)

const (
	demoUserKeyPrefix = "demo_user:"
	demoUserEmailsKey = "demo_user_emails"
)

type DemoUserRepository interface {
	Save(ctx context.Context, user *models.DemoUser) error
	GetByEmail(ctx context.Context, email string) (*models.DemoUser, error)
	ListEmails(ctx context.Context) ([]string, error)
}

type demoUserRepository struct {
	kv store.Store
}

func NewDemoUserRepository(kv store.Store) DemoUserRepository {
	return &demoUserRepository{kv: kv}
}

func (r *demoUserRepository) Save(ctx context.Context, user *models.DemoUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode demo user: %w", err)
	}
	if err := r.kv.Set(ctx, demoUserKeyPrefix+user.Email, data); err != nil {
		return err
	}
	return r.kv.SAdd(ctx, demoUserEmailsKey, user.Email)
}

func (r *demoUserRepository) GetByEmail(ctx context.Context, email string) (*models.DemoUser, error) {
	data, err := r.kv.Get(ctx, demoUserKeyPrefix+email)
	if err != nil {
		return nil, err
	}

	var user models.DemoUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode demo user: %w", err)
	}
	return &user, nil
}

func (r *demoUserRepository) ListEmails(ctx context.Context) ([]string, error) {
	return r.kv.SMembers(ctx, demoUserEmailsKey)
}
