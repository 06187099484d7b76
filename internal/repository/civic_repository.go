package repository

import (
	"lifequest_backend/internal/model"

	"gorm.io/gorm"
)

// CivicRepository 公民行动完成流水
type CivicRepository struct {
	DB *gorm.DB
}

func NewCivicRepository(db *gorm.DB) *CivicRepository {
	return &CivicRepository{DB: db}
}

func (r *CivicRepository) Create(log *model.CivicLog) error {
	return r.DB.Create(log).Error
}

func (r *CivicRepository) FindByUserID(userID string) ([]model.CivicLog, error) {
	var logs []model.CivicLog
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// TotalImpact 用户累计影响力点数
func (r *CivicRepository) TotalImpact(userID string) (int, error) {
	var total int64
	err := r.DB.Model(&model.CivicLog{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(impact_points), 0)").
		Scan(&total).Error
	return int(total), err
}
