package repository

import (
	"context"
	"errors"
	"time"

	"lifequest_backend/internal/model"
	"lifequest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobStore 键值快照存储。Get 未命中返回 ok=false，不算错误。
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GormBlobStore 以 profile_blobs 表为底的存储实现
type GormBlobStore struct {
	DB *gorm.DB
}

func NewGormBlobStore(db *gorm.DB) *GormBlobStore {
	return &GormBlobStore{DB: db}
}

func (s *GormBlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	var blob model.ProfileBlob
	err := s.DB.WithContext(ctx).Where("`key` = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob.Value, true, nil
}

func (s *GormBlobStore) Set(ctx context.Context, key, value string) error {
	blob := model.ProfileBlob{Key: key, Value: value}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

func (s *GormBlobStore) Remove(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("`key` = ?", key).Delete(&model.ProfileBlob{}).Error
}

const blobCacheTTL = time.Hour

// LayeredBlobStore 在主存储前加一层 Redis 写穿缓存。
// 主存储写失败即整体失败，缓存失败只降级不报错。
type LayeredBlobStore struct {
	primary BlobStore
	rdb     *redis.Client
}

func NewLayeredBlobStore(primary BlobStore, rdb *redis.Client) *LayeredBlobStore {
	return &LayeredBlobStore{primary: primary, rdb: rdb}
}

func (s *LayeredBlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		return raw, true, nil
	}

	value, ok, err := s.primary.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	if err := s.rdb.Set(ctx, key, value, blobCacheTTL).Err(); err != nil {
		logger.Log.Warn("blob cache backfill failed", zap.String("key", key), zap.Error(err))
	}
	return value, true, nil
}

func (s *LayeredBlobStore) Set(ctx context.Context, key, value string) error {
	if err := s.primary.Set(ctx, key, value); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, value, blobCacheTTL).Err(); err != nil {
		logger.Log.Warn("blob cache write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *LayeredBlobStore) Remove(ctx context.Context, key string) error {
	if err := s.primary.Remove(ctx, key); err != nil {
		return err
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("blob cache delete failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
