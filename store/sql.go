package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

type kvSetMember struct {
	SetKey string `gorm:"primaryKey"`
	Member string `gorm:"primaryKey"`
}

func (kvSetMember) TableName() string { return "kv_set_members" }

type kvSortedMember struct {
	ZKey   string  `gorm:"column:zkey;primaryKey"`
	Member string  `gorm:"primaryKey"`
	Score  float64 `gorm:"not null;index"`
}

func (kvSortedMember) TableName() string { return "kv_sorted_members" }

// SQLStore keeps the key space in three relational tables so the CMS can run
// on Postgres when no Redis is available.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore migrates the key-space tables and returns the store.
func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&kvEntry{}, &kvSetMember{}, &kvSortedMember{}); err != nil {
		return nil, fmt.Errorf("migrate kv tables: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sql get %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("sql set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if result.Error != nil {
		return false, fmt.Errorf("sql setnx %s: %w", key, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("sql delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	result := make([][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	var entries []kvEntry
	if err := s.db.WithContext(ctx).Where("key IN ?", keys).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("sql mget: %w", err)
	}

	byKey := make(map[string][]byte, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}
	for i, k := range keys {
		result[i] = byKey[k]
	}
	return result, nil
}

func (s *SQLStore) SAdd(ctx context.Context, key, member string) error {
	m := kvSetMember{SetKey: key, Member: member}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return fmt.Errorf("sql sadd %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) SRem(ctx context.Context, key, member string) error {
	err := s.db.WithContext(ctx).
		Where("set_key = ? AND member = ?", key, member).
		Delete(&kvSetMember{}).Error
	if err != nil {
		return fmt.Errorf("sql srem %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) SMembers(ctx context.Context, key string) ([]string, error) {
	members := []string{}
	err := s.db.WithContext(ctx).Model(&kvSetMember{}).
		Where("set_key = ?", key).
		Pluck("member", &members).Error
	if err != nil {
		return nil, fmt.Errorf("sql smembers %s: %w", key, err)
	}
	return members, nil
}

func (s *SQLStore) ZAdd(ctx context.Context, key, member string, score float64) error {
	m := kvSortedMember{ZKey: key, Member: member, Score: score}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zkey"}, {Name: "member"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("sql zadd %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) ZRem(ctx context.Context, key, member string) error {
	err := s.db.WithContext(ctx).
		Where("zkey = ? AND member = ?", key, member).
		Delete(&kvSortedMember{}).Error
	if err != nil {
		return fmt.Errorf("sql zrem %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	card, err := s.ZCard(ctx, key)
	if err != nil {
		return nil, err
	}

	start, stop, ok := normalizeRange(start, stop, card)
	if !ok {
		return []string{}, nil
	}

	members := []string{}
	err = s.db.WithContext(ctx).Model(&kvSortedMember{}).
		Where("zkey = ?", key).
		Order("score desc").
		Order("member desc").
		Offset(int(start)).
		Limit(int(stop - start + 1)).
		Pluck("member", &members).Error
	if err != nil {
		return nil, fmt.Errorf("sql zrevrange %s: %w", key, err)
	}
	return members, nil
}

func (s *SQLStore) ZCard(ctx context.Context, key string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&kvSortedMember{}).Where("zkey = ?", key).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("sql zcard %s: %w", key, err)
	}
	return n, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// normalizeRange applies Redis index rules to an inclusive [start, stop]
// window over a set of card members.
func normalizeRange(start, stop, card int64) (int64, int64, bool) {
	if start < 0 {
		start += card
	}
	if stop < 0 {
		stop += card
	}
	if start < 0 {
		start = 0
	}
	if stop >= card {
		stop = card - 1
	}
	if card == 0 || start > stop {
		return 0, 0, false
	}
	return start, stop, true
}
