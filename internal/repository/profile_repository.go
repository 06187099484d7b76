package repository

import (
	"context"
	"encoding/json"
	"sync"

	"lifequest_backend/internal/model"
)

// 快照键前缀
const (
	KeyProfilePrefix  = "lifequest:profile:"
	KeySignsPrefix    = "lifequest:signs:"
	KeySettingsPrefix = "lifequest:settings:"
)

// ProfileRepository 用户档案的加载/保存。
// 内存中的档案是权威状态：存储写失败时档案仍保留在缓存里，
// 下一次成功写入前变更只存在于内存（调用方负责提示"未保存"）。
type ProfileRepository struct {
	store BlobStore

	mu    sync.RWMutex
	cache map[string]*model.UserProfile
}

func NewProfileRepository(store BlobStore) *ProfileRepository {
	return &ProfileRepository{
		store: store,
		cache: make(map[string]*model.UserProfile),
	}
}

// Load 返回缓存中的档案；缓存未命中时从存储反序列化，
// 存储里也没有就建一个空档案。
func (r *ProfileRepository) Load(ctx context.Context, userID string) (*model.UserProfile, error) {
	r.mu.RLock()
	if p, ok := r.cache[userID]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	raw, ok, err := r.store.Get(ctx, KeyProfilePrefix+userID)
	if err != nil {
		return nil, err
	}

	var p *model.UserProfile
	if ok {
		p = &model.UserProfile{}
		if err := json.Unmarshal([]byte(raw), p); err != nil {
			return nil, err
		}
		p.EnsureDefaults()
	} else {
		p = model.NewUserProfile(userID)
	}

	r.mu.Lock()
	// 并发加载时先写进去的为准
	if existing, exists := r.cache[userID]; exists {
		p = existing
	} else {
		r.cache[userID] = p
	}
	r.mu.Unlock()
	return p, nil
}

// Save 把档案写回存储。写失败时内存状态保留，错误上抛给调用方处理。
func (r *ProfileRepository) Save(ctx context.Context, p *model.UserProfile) error {
	r.mu.Lock()
	r.cache[p.UserID] = p
	r.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyProfilePrefix+p.UserID, string(data))
}

// Replace 备份恢复时整体替换档案
func (r *ProfileRepository) Replace(ctx context.Context, p *model.UserProfile) error {
	return r.Save(ctx, p)
}

// Signs 已发现的标识列表，缺省为空
func (r *ProfileRepository) Signs(ctx context.Context, userID string) ([]model.UserSign, error) {
	raw, ok, err := r.store.Get(ctx, KeySignsPrefix+userID)
	if err != nil || !ok {
		return nil, err
	}
	var signs []model.UserSign
	if err := json.Unmarshal([]byte(raw), &signs); err != nil {
		return nil, err
	}
	return signs, nil
}

func (r *ProfileRepository) SaveSigns(ctx context.Context, userID string, signs []model.UserSign) error {
	data, err := json.Marshal(signs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeySignsPrefix+userID, string(data))
}

// Settings 应用设置块，缺省返回默认值
func (r *ProfileRepository) Settings(ctx context.Context, userID string) (model.AppSettings, error) {
	settings := model.AppSettings{Language: "en", NotificationsOn: true}
	raw, ok, err := r.store.Get(ctx, KeySettingsPrefix+userID)
	if err != nil || !ok {
		return settings, err
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return model.AppSettings{Language: "en", NotificationsOn: true}, err
	}
	return settings, nil
}

func (r *ProfileRepository) SaveSettings(ctx context.Context, userID string, settings model.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeySettingsPrefix+userID, string(data))
}
