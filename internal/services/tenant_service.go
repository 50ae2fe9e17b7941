package services

import (
	"fmt"
	"strings"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService() *TenantService {
	return &TenantService{
		db: database.GetDB(),
	}
}

// Create 创建租户
func (s *TenantService) Create(name, code string) (*models.Tenant, error) {
	var count int64
	s.db.Model(&models.Tenant{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("租户代码已存在")
	}

	tenant := &models.Tenant{
		Name:   name,
		Code:   code,
		Status: models.TenantStatusActive,
	}

	if err := s.db.Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetByID 根据ID获取租户
func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.First(&tenant, id).Error
	return &tenant, err
}

// List 获取租户列表（平台管理员）
func (s *TenantService) List(search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.Tenant, int64, error) {
	spec := &query.Spec{
		Search:        search,
		SearchColumns: []string{"name", "code"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"name", "code", "status", "created_at"},
		DefaultSort: []query.Sort{{Column: "name"}},
	}

	var tenants []models.Tenant
	total, err := query.Find(s.db.Model(&models.Tenant{}), spec, params, &tenants)
	return tenants, total, err
}

// Update 更新租户
func (s *TenantService) Update(id uint, name, status string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, id).Error; err != nil {
		return nil, err
	}

	if name != "" {
		tenant.Name = name
	}
	if status != "" {
		tenant.Status = status
	}

	if err := s.db.Save(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Delete 删除租户（有用户时不可删除）
func (s *TenantService) Delete(id uint) error {
	var userCount int64
	s.db.Model(&models.User{}).Where("tenant_id = ?", id).Count(&userCount)
	if userCount > 0 {
		return fmt.Errorf("租户下存在 %d 个用户，无法删除", userCount)
	}
	return s.db.Delete(&models.Tenant{}, id).Error
}
