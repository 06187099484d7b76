package model

import "time"

// UserSign 用户发现的标识/彩蛋记录，独立于成就图谱持久化
type UserSign struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	DiscoveredAt time.Time `json:"discoveredAt"`
	Note         string    `json:"note,omitempty"`
}

// AppSettings 应用设置，整体作为一个 JSON 块存取
type AppSettings struct {
	Language            string `json:"language"`
	Theme               string `json:"theme,omitempty"`
	NotificationsOn     bool   `json:"notificationsOn"`
	NavigationAlertsOn  bool   `json:"navigationAlertsOn"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}
