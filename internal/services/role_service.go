package services

import (
	"fmt"

	"lawdesk/internal/database"
	"lawdesk/internal/models"

	"gorm.io/gorm"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService() *RoleService {
	return &RoleService{
		db: database.GetDB(),
	}
}

// Create 创建角色
func (s *RoleService) Create(tenantID uint, code, name, description string) (*models.Role, error) {
	var count int64
	s.db.Model(&models.Role{}).Where("tenant_id = ? AND code = ?", tenantID, code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("角色代码已存在")
	}

	role := &models.Role{
		TenantID:    tenantID,
		Code:        code,
		Name:        name,
		Description: description,
		Status:      models.RoleStatusActive,
	}

	if err := s.db.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// GetByID 根据ID获取角色
func (s *RoleService) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := s.db.Preload("Permissions").First(&role, id).Error
	return &role, err
}

// GetByTenant 获取租户的所有角色
func (s *RoleService) GetByTenant(tenantID uint) ([]models.Role, error) {
	var roles []models.Role
	err := s.db.Where("tenant_id = ?", tenantID).Order("code").Find(&roles).Error
	return roles, err
}

// Update 更新角色
func (s *RoleService) Update(id uint, name, description, status string) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return nil, err
	}

	if name != "" {
		role.Name = name
	}
	if description != "" {
		role.Description = description
	}
	if status != "" {
		role.Status = status
	}

	if err := s.db.Save(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Delete 删除角色（系统角色不可删除）
func (s *RoleService) Delete(id uint) error {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return err
	}
	if role.IsSystem {
		return fmt.Errorf("系统角色不可删除")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
}

// AssignPermissions 全量分配权限
func (s *RoleService) AssignPermissions(roleID uint, permissionIDs []uint) error {
	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			rp := models.RolePermission{RoleID: roleID, PermissionID: pid}
			if err := tx.Create(&rp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPermissions 获取角色权限
func (s *RoleService) GetPermissions(roleID uint) ([]models.Permission, error) {
	var role models.Role
	if err := s.db.Preload("Permissions").First(&role, roleID).Error; err != nil {
		return nil, err
	}
	return role.Permissions, nil
}
