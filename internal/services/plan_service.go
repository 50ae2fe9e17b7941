package services

import (
	"lawdesk/internal/database"
	"lawdesk/internal/models"

	"gorm.io/gorm"
)

// PlanService 套餐服务（全局数据，由平台维护）
type PlanService struct {
	db *gorm.DB
}

func NewPlanService() *PlanService {
	return &PlanService{
		db: database.GetDB(),
	}
}

// GetActive 获取所有启用的套餐
func (s *PlanService) GetActive() ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.Where("status = ?", "active").Order("price").Find(&plans).Error
	return plans, err
}

// GetByID 根据ID获取套餐
func (s *PlanService) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.First(&plan, id).Error
	return &plan, err
}
