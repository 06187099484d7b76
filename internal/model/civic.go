package model

import (
	"time"

	"gorm.io/gorm"
)

// CivicActionType 公民行动类型
type CivicActionType string

const (
	CivicVolunteer CivicActionType = "volunteer"
	CivicDonation  CivicActionType = "donation"
	CivicAdvocacy  CivicActionType = "advocacy"
	CivicCommunity CivicActionType = "community"
	CivicEnviron   CivicActionType = "environment"
)

// CivicAction 公民行动定义，与成就目录并列的第二类静态条目
type CivicAction struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Type               CivicActionType    `json:"type"`
	ImpactPoints       int                `json:"impactPoints"`
	VerificationMethod VerificationMethod `json:"verificationMethod"`
	TimeEstimate       string             `json:"timeEstimate"`
	Tags               []string           `json:"tags,omitempty"`
}

// CivicLog 公民行动完成流水，只追加不修改
type CivicLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       string         `gorm:"size:64;index" json:"userId"`
	ActionID     string         `gorm:"size:64;index" json:"actionId"`
	ImpactPoints int            `gorm:"default:0" json:"impactPoints"`
	Evidence     string         `gorm:"type:text" json:"evidence,omitempty"`
}

func (CivicLog) TableName() string {
	return "civic_logs"
}
