package model

import "time"

// ProfileBlob 键值快照表，承载用户档案、设置等 JSON 数据
type ProfileBlob struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:longtext" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ProfileBlob) TableName() string {
	return "profile_blobs"
}
