package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lawdesk/internal/database"
	"lawdesk/internal/models"
	"lawdesk/pkg/pagination"
	"lawdesk/pkg/query"

	"gorm.io/gorm"
)

type RiskCategoryService struct {
	db *gorm.DB
}

func NewRiskCategoryService() *RiskCategoryService {
	return &RiskCategoryService{
		db: database.GetDB(),
	}
}

// ValidateRiskCategory 校验风险分类参数
// 颜色沿用旧后台约定：固定7个字符（# + 6位）
func (s *RiskCategoryService) ValidateRiskCategory(name, color string) error {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > 100 {
		return fmt.Errorf("名称长度必须在1-100个字符之间")
	}
	if color != "" && len(color) != 7 {
		return fmt.Errorf("颜色长度必须为7个字符")
	}
	return nil
}

// Create 创建风险分类
func (s *RiskCategoryService) Create(tenantID uint, name, description, color string) (*models.RiskCategory, error) {
	if err := s.ValidateRiskCategory(name, color); err != nil {
		return nil, err
	}

	if color == "" {
		color = "#FF9800"
	}

	category := &models.RiskCategory{
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Color:       color,
		Status:      models.RiskCategoryStatusActive,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID 根据ID获取风险分类（租户范围内）
func (s *RiskCategoryService) GetByID(id uint, tenantID uint) (*models.RiskCategory, error) {
	var category models.RiskCategory
	err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&category).Error
	return &category, err
}

// List 获取风险分类列表
func (s *RiskCategoryService) List(tenantID uint, search, status, sortField, sortDir string, params *pagination.PageParams) ([]models.RiskCategory, int64, error) {
	spec := &query.Spec{
		TenantID:      query.TenantScope(tenantID),
		Search:        search,
		SearchColumns: []string{"name", "description"},
		Filters: []query.Filter{
			{Column: "status", Value: query.FilterValue(status)},
		},
		SortColumn:  sortField,
		SortDesc:    strings.EqualFold(sortDir, "desc"),
		Sortable:    []string{"name", "status", "created_at"},
		DefaultSort: []query.Sort{{Column: "name"}},
	}

	var categories []models.RiskCategory
	total, err := query.Find(s.db.Model(&models.RiskCategory{}), spec, params, &categories)
	return categories, total, err
}

// Update 更新风险分类
func (s *RiskCategoryService) Update(id uint, tenantID uint, name, description, color *string) (*models.RiskCategory, error) {
	var category models.RiskCategory
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&category).Error; err != nil {
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}
	if color != nil {
		category.Color = *color
	}

	if err := s.ValidateRiskCategory(category.Name, category.Color); err != nil {
		return nil, err
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete 删除风险分类（硬删除）
func (s *RiskCategoryService) Delete(id uint, tenantID uint) error {
	result := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.RiskCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ToggleStatus 切换启用状态（active ⇄ inactive）
func (s *RiskCategoryService) ToggleStatus(id uint, tenantID uint) (*models.RiskCategory, error) {
	var category models.RiskCategory
	if err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&category).Error; err != nil {
		return nil, err
	}

	if category.Status == models.RiskCategoryStatusActive {
		category.Status = models.RiskCategoryStatusInactive
	} else {
		category.Status = models.RiskCategoryStatusActive
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetActive 获取租户下所有启用的风险分类（快捷表单用）
func (s *RiskCategoryService) GetActive(tenantID uint) ([]models.RiskCategory, error) {
	var categories []models.RiskCategory
	err := s.db.Where("tenant_id = ? AND status = ?", tenantID, models.RiskCategoryStatusActive).
		Order("name").Find(&categories).Error
	return categories, err
}
