package services

import (
	"lawdesk/internal/database"
	"lawdesk/internal/models"

	"gorm.io/gorm"
)

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService() *PermissionService {
	return &PermissionService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部权限
func (s *PermissionService) GetAll() ([]models.Permission, error) {
	var permissions []models.Permission
	err := s.db.Order("module, action").Find(&permissions).Error
	return permissions, err
}

// GetByModule 按模块获取权限
func (s *PermissionService) GetByModule(module string) ([]models.Permission, error) {
	var permissions []models.Permission
	err := s.db.Where("module = ?", module).Order("action").Find(&permissions).Error
	return permissions, err
}
